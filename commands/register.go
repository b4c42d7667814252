package commands

import (
	"context"
	"time"

	"github.com/K0NGR3SS/riskmap/internal/aws"
	"github.com/K0NGR3SS/riskmap/internal/logging"
	"github.com/K0NGR3SS/riskmap/internal/register"
	"github.com/K0NGR3SS/riskmap/internal/ui"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Print the risk register with scores and levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		var getter register.ParameterGetter
		if cfg.Register.SSMParameter != "" {
			client, err := aws.NewClient(ctx, cfg.AWS.Region)
			if err != nil {
				return err
			}
			getter = client.SSM
		}

		reg, err := register.Resolve(ctx, logger, registerSource(cfg), getter)
		if err != nil {
			return err
		}

		ui.PrintRegister(reg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
