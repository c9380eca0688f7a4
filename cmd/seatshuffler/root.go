package main

import (
	"fmt"

	"SeatShuffler/internal/bootstrap"
	"SeatShuffler/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seatshuffler",
	Short: "Random classroom seating with drag-to-swap rearrangement",
	Long: `seatshuffler assigns students 1..N to classroom seats at random.

Columns are balanced outward from the centre, seat numbers are filled column
by column, and any two seats can be swapped afterwards by dragging one onto
the other in the web client or the terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedEnv, err := bootstrap.Loadenv()
		if err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// The terminal UI owns stdout.
		if cmd.Name() == "tui" {
			logger = zap.NewNop()
			return nil
		}
		logger, err = config.NewLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if !loadedEnv {
			logger.Debug("no .env file found, using system environment variables")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default $"+config.PathEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
