package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"execshed/internal/console"
	"execshed/internal/exec"
	"execshed/internal/load"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the executive on a live terminal dashboard",
	Long: `Runs the executive against a random load source and renders each cycle on
an in-place dashboard. Suspended tasks blink on the dashboard's own clock.
Press q to quit early.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagCycles, "cycles", 0, "number of control cycles (0 = config value)")
	watchCmd.Flags().IntVar(&flagTick, "tick", 0, "cycle interval in milliseconds (0 = config value)")
	watchCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed for the load source (0 = time-based)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	ctrl, err := exec.NewController(cfg)
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	source := load.NewLevels(cfg.LoadLevels, seededRNG(flagSeed))
	model := console.NewModel(ctrl, source, cfg)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	if m, ok := final.(console.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
