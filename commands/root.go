package commands

import (
	"os"

	"github.com/K0NGR3SS/riskmap/internal/ui"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "v1.0"

var rootCmd = &cobra.Command{
	Use:   "riskmap",
	Short: "riskmap renders probability/severity risk heatmaps",
	Long: `riskmap plots a risk register on a severity x probability heatmap with iso-risk contours.
Run without arguments it renders the built-in register to updated_risk_heatmap.png.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRender,
}

func Execute() {
	if !quietRequested(os.Args[1:]) {
		ui.PrintBanner(Version)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func quietRequested(args []string) bool {
	for _, a := range args {
		if a == "--quiet" || a == "-q" {
			return true
		}
	}
	return false
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to a YAML config file")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	pf.String("log-file", "", "Also write JSON logs to this file, rotated")
	pf.String("register", "", "YAML risk register file (default: built-in register)")
	pf.String("ssm-parameter", "", "SSM parameter holding a YAML risk register")
	pf.StringP("region", "r", "", "AWS region for SSM and S3")
	pf.BoolP("quiet", "q", false, "Suppress banner and progress output")

	addRenderFlags(rootCmd)
}
