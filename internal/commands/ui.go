package commands

import (
	"io"

	"github.com/spf13/cobra"

	"habitbox/internal/ui"
)

func runUI(_ *cobra.Command, ro *rootOptions) error {
	// The TUI owns the terminal; only a configured log_file receives logs.
	e, err := ro.open(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	habits, err := e.habits()
	if err != nil {
		return err
	}
	goals, err := e.goals()
	if err != nil {
		return err
	}
	return ui.Run(habits, goals, e.cfg, ui.WithClock(ro.now), ui.WithLogger(e.log))
}
