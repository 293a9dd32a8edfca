// Package cli wires the cobra commands and launches the planner TUI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/dayplan/internal/config"
	"github.com/pablasso/dayplan/internal/demo"
	"github.com/pablasso/dayplan/internal/eventlog"
	"github.com/pablasso/dayplan/internal/plan"
	"github.com/pablasso/dayplan/internal/tui"
	"github.com/pablasso/dayplan/internal/version"
)

var hoursFlag float64

var rootCmd = &cobra.Command{
	Use:     "dayplan",
	Short:   "Terminal day planner with realism scoring",
	Long:    `Dayplan holds a day's tasks with effort, deadlines and importance, and scores how realistic the plan is against the hours you actually have.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(false)
	},
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&hoursFlag, "hours", 0, "Override available hours for this session")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the planner with a seeded sample day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(true)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dayplan %s (commit %s, built %s)\n", version.Version, version.CommitSHA, version.BuildDate)
	},
}

// launch builds the session (config, event log, store) and runs the
// TUI over it. The store lives only for the session.
func launch(seed bool) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if hoursFlag > 0 {
		cfg.AvailableHours = hoursFlag
	}

	log, err := eventlog.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Close()

	store := plan.NewStore()
	if seed {
		if err := demo.Seed(store); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return tui.Run(tui.Options{
		Store:          store,
		AvailableHours: cfg.AvailableHours,
		Log:            log,
	})
}
