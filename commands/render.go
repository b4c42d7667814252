package commands

import (
	"context"
	"time"

	"github.com/K0NGR3SS/riskmap/internal/aws"
	"github.com/K0NGR3SS/riskmap/internal/heatmap"
	"github.com/K0NGR3SS/riskmap/internal/logging"
	"github.com/K0NGR3SS/riskmap/internal/notifications"
	"github.com/K0NGR3SS/riskmap/internal/publish"
	"github.com/K0NGR3SS/riskmap/internal/register"
	"github.com/K0NGR3SS/riskmap/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the risk heatmap",
	Long: `Renders the risk register as a severity x probability heatmap with iso-risk contours.
The output format follows the file extension: png, jpg, tiff, svg or pdf.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", heatmap.DefaultOutput, "Output image path")
	f.String("title", "", "Plot title")
	f.Int("dpi", 100, "Resolution of raster output")
	f.String("publish-bucket", "", "Upload the image to this S3 bucket")
	f.String("publish-key", "", "S3 object key (default: output file name)")
	f.String("slack-webhook", "", "Post a summary to this Slack webhook")
	f.String("slack-channel", "", "Slack channel override")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var spinner *pterm.SpinnerPrinter
	if !isQuiet(cmd) {
		spinner = ui.StartSpinner("Loading risk register...")
	}
	fail := func(err error) error {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		logger.Error("Render failed", zap.Error(err))
		return err
	}

	var awsClient *aws.Client
	if cfg.NeedsAWS() {
		ui.UpdateSpinner(spinner, "Initializing AWS client...")
		awsClient, err = aws.NewClient(ctx, cfg.AWS.Region)
		if err != nil {
			return fail(err)
		}
	}

	var getter register.ParameterGetter
	if awsClient != nil {
		getter = awsClient.SSM
	}
	reg, err := register.Resolve(ctx, logger, registerSource(cfg), getter)
	if err != nil {
		return fail(err)
	}

	ui.UpdateSpinner(spinner, "Rendering heatmap...")
	renderer := heatmap.NewRenderer(logger, cfg.RenderOptions())
	if err := renderer.Render(reg, cfg.Output); err != nil {
		return fail(err)
	}

	location := cfg.Output
	if cfg.Publish.S3Bucket != "" {
		ui.UpdateSpinner(spinner, "Publishing heatmap to S3...")
		location, err = publish.NewS3Publisher(awsClient.S3, logger).
			Publish(ctx, cfg.Output, cfg.Publish.S3Bucket, cfg.Publish.S3Key)
		if err != nil {
			return fail(err)
		}
	}

	if cfg.Slack.WebhookURL != "" {
		ui.UpdateSpinner(spinner, "Notifying Slack...")
		notifier := notifications.NewSlackNotifier(cfg.Slack.WebhookURL, cfg.Slack.Channel)
		if err := notifier.SendHeatmapSummary(reg, location); err != nil {
			logger.Warn("Slack notification failed", zap.Error(err))
		}
	}

	if spinner != nil {
		spinner.Success("Heatmap written to " + location)
	}
	return nil
}

func init() {
	addRenderFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}
