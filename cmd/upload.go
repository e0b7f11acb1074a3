package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/assetgroups"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/campaigns"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/sitelinks"
)

// uploadCmd groups the one-shot upload flows for CLI use.
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Run an upload flow once and exit",
}

var uploadCampaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Upload pending rows of the NewCampaigns sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(cmd.Context(), runCampaigns)
	},
}

var uploadAssetGroupsCmd = &cobra.Command{
	Use:   "assetgroups",
	Short: "Upload pending rows of the NewAssetGroups and Assets sheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(cmd.Context(), runAssetGroups)
	},
}

var uploadSitelinksCmd = &cobra.Command{
	Use:   "sitelinks",
	Short: "Upload pending rows of the Sitelinks sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(cmd.Context(), runSitelinks)
	},
}

var uploadAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every upload flow in dependency order",
	Long: `Runs campaigns, then asset groups, then sitelinks, so entities
created by an earlier flow are available to the later ones within the same
invocation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(cmd.Context(), runCampaigns, runAssetGroups, runSitelinks)
	},
}

type flowFunc func(ctx context.Context, application *app) (*bulk.Summary, error)

func runCampaigns(ctx context.Context, application *app) (*bulk.Summary, error) {
	svc := campaigns.NewService(application.sheets, application.ads, application.store, application.log)
	return svc.Run(ctx)
}

func runAssetGroups(ctx context.Context, application *app) (*bulk.Summary, error) {
	svc := assetgroups.NewService(application.sheets, application.ads, application.fetcher, application.store, application.log)
	return svc.Run(ctx)
}

func runSitelinks(ctx context.Context, application *app) (*bulk.Summary, error) {
	svc := sitelinks.NewService(application.sheets, application.ads, application.store, application.log)
	return svc.Run(ctx)
}

// runUpload bootstraps once and runs the flows in order. A failing flow does
// not stop the remaining ones; per-row errors are already in the sheet.
func runUpload(ctx context.Context, flows ...flowFunc) error {
	application, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	log := application.log
	defer log.Sync()

	var firstErr error
	for _, flow := range flows {
		summary, err := flow(ctx, application)
		if err != nil {
			log.Error("Upload flow failed", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Info("Upload flow finished",
			zap.String("flow", summary.Flow),
			zap.String("run_id", summary.RunID),
			zap.Int("uploaded", summary.Uploaded),
			zap.Int("failed", summary.Failed),
			zap.Int("skipped", summary.Skipped))
	}
	return firstErr
}

func init() {
	uploadCmd.AddCommand(uploadCampaignsCmd)
	uploadCmd.AddCommand(uploadAssetGroupsCmd)
	uploadCmd.AddCommand(uploadSitelinksCmd)
	uploadCmd.AddCommand(uploadAllCmd)
	RootCmd.AddCommand(uploadCmd)
}
