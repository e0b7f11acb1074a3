package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/google-marketing-solutions/madpmax-sub000/core/loader"
	"github.com/google-marketing-solutions/madpmax-sub000/core/logger"
	"github.com/google-marketing-solutions/madpmax-sub000/core/middleware"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/assetgroups"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/campaigns"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/sitelinks"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the upload trigger server",
	Long: `Starts the HTTP server exposing the upload flows, so a spreadsheet
button or a scheduler can trigger them remotely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		log := application.log
		defer log.Sync()

		fiberApp := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// RayID first so everything downstream can be traced.
		fiberApp.Use(middleware.RayID())

		fiberApp.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(log, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		fiberApp.Use(middleware.Auth(application.cfg.Server.ApiKey))

		mgr := loader.NewManager(log)
		mgr.Register(campaigns.NewFeature(application.sheets, application.ads, application.store, log))
		mgr.Register(assetgroups.NewFeature(application.sheets, application.ads, application.fetcher, application.store, log))
		mgr.Register(sitelinks.NewFeature(application.sheets, application.ads, application.store, log))

		if err := mgr.LoadAll(fiberApp); err != nil {
			return err
		}

		go func() {
			log.Info("Starting server", zap.String("port", application.cfg.Server.Port))
			if err := fiberApp.Listen(":" + application.cfg.Server.Port); err != nil {
				log.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		log.Info("Shutting down server...")
		return fiberApp.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
