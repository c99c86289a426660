// Package commands wires the habitbox command tree.
package commands

import (
	"time"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

type rootOptions struct {
	ConfigPath string
	Ephemeral  bool

	now func() time.Time
}

func New() *cobra.Command {
	return newRoot(&rootOptions{now: time.Now})
}

func newRoot(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "habitbox",
		Short:         "Track daily habits and long-term goals in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, ro)
		},
	}
	cmd.PersistentFlags().StringVar(&ro.ConfigPath, "config", "",
		"Config file (default $HABITBOX_CONFIG or ~/.config/habitbox/config.toml).")
	cmd.PersistentFlags().BoolVar(&ro.Ephemeral, "ephemeral", false,
		"Keep everything in memory for this run.")

	AddCommands(cmd, ro)
	return cmd
}

func AddCommands(topLevel *cobra.Command, ro *rootOptions) {
	addHabit(topLevel, ro)
	addTimeline(topLevel, ro)
	addGoal(topLevel, ro)
	addVersion(topLevel)
}
