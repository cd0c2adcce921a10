package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "execshed",
	Short: "Fixed-priority task executive with overload shedding",
	Long: `Execshed simulates a fixed-priority task executive that keeps critical
work running under fluctuating load. When a cycle's load sample exceeds the
overload threshold, degradable tasks are suspended; a hysteresis counter must
fully drain before they resume, so noisy load near the threshold cannot flap
tasks on and off.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("execshed version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config (defaults apply when empty)")
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
