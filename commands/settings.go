package commands

import (
	"fmt"

	"github.com/K0NGR3SS/riskmap/internal/config"
	"github.com/K0NGR3SS/riskmap/internal/register"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// loadSettings reads --config (or the defaults) and applies any flags the
// user set on top.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()

	cfg := config.Default()
	if path, _ := fs.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrideString(fs, "log-level", &cfg.Log.Level)
	overrideString(fs, "log-file", &cfg.Log.File)
	overrideString(fs, "register", &cfg.Register.File)
	overrideString(fs, "ssm-parameter", &cfg.Register.SSMParameter)
	overrideString(fs, "region", &cfg.AWS.Region)
	overrideString(fs, "output", &cfg.Output)
	overrideString(fs, "title", &cfg.Title)
	overrideString(fs, "publish-bucket", &cfg.Publish.S3Bucket)
	overrideString(fs, "publish-key", &cfg.Publish.S3Key)
	overrideString(fs, "slack-webhook", &cfg.Slack.WebhookURL)
	overrideString(fs, "slack-channel", &cfg.Slack.Channel)
	if f := fs.Lookup("dpi"); f != nil && f.Changed {
		dpi, err := fs.GetInt("dpi")
		if err != nil {
			return nil, err
		}
		cfg.DPI = dpi
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func overrideString(fs *pflag.FlagSet, name string, dst *string) {
	if f := fs.Lookup(name); f != nil && f.Changed {
		*dst = f.Value.String()
	}
}

func registerSource(cfg *config.Config) register.Source {
	return register.Source{File: cfg.Register.File, Parameter: cfg.Register.SSMParameter}
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}
