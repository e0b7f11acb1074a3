package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/google-marketing-solutions/madpmax-sub000/core/logger"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "madpmax",
	Short: "Spreadsheet-driven Performance Max campaign uploader",
	Long: `madpmax reads campaign, asset group, asset and sitelink rows from a
management spreadsheet, submits them as batched mutate calls against the
Google Ads API, and writes per-row status back into the sheet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard logger in console format so CLI
		// failures look the same as runtime logs.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
