package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jisook325/tracker/internal/config"
	"github.com/jisook325/tracker/internal/logging"
	"github.com/jisook325/tracker/internal/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "seed",
		Short:         "Seed the mock user with two weeks of demo data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.LoadConfig()
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			loc, err := cfg.Location()
			if err != nil {
				return fmt.Errorf("timezone %q: %w", cfg.TimezoneName, err)
			}
			db, err := config.NewDatabase(cfg)
			if err != nil {
				return err
			}
			if err := seed.Run(cmd.Context(), db, time.Now(), loc, logger); err != nil {
				logger.Error("seed failed", zap.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed completed")
			return nil
		},
	}
}
