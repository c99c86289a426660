package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"habitbox/internal/commands/options"
	"habitbox/internal/habit"
	"habitbox/internal/printers"
	"habitbox/internal/timeline"
)

func addHabit(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits", "h"},
		Short:   "Manage tracked habits.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	addHabitAdd(cmd, ro)
	addHabitList(cmd, ro)
	addHabitDone(cmd, ro)
	addHabitPin(cmd, ro)
	addHabitRemove(cmd, ro)
	topLevel.AddCommand(cmd)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid habit id %q", s)
	}
	return id, nil
}

func addHabitAdd(parent *cobra.Command, ro *rootOptions) {
	var pin bool
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit.",
		Example: `
habitbox habit add Morning stretch
habitbox habit add --pin Drink water
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()
			hs, err := e.habits()
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			changed, err := hs.Add(name, pin)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.ErrOrStderr(), "nothing added: habit name is blank")
				return nil
			}
			list := hs.Habits()
			h := list[len(list)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added habit %d %q\n", h.ID, h.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&pin, "pin", false, "Mark the habit as non-negotiable.")
	parent.AddCommand(cmd)
}

func addHabitList(parent *cobra.Command, ro *rootOptions) {
	oo := &options.OutputOptions{}
	do := &options.DateOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List habits and whether they are done today.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := func() error {
				day, err := do.Day(ro.now)
				if err != nil {
					return err
				}
				e, err := ro.open(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer e.Close()
				hs, err := e.habits()
				if err != nil {
					return err
				}
				pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
				if oo.JSON {
					return pp.JSON(hs.Habits())
				}
				pp.Habits(hs.Habits(), day)
				return nil
			}()
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddDateArg(cmd, do)
	parent.AddCommand(cmd)
}

func addHabitDone(parent *cobra.Command, ro *rootOptions) {
	do := &options.DateOptions{}
	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a habit's completion for today.",
		Example: `
habitbox habit done 1
habitbox habit done 1 --date 2024-06-10
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			day, err := do.Day(ro.now)
			if err != nil {
				return err
			}
			return withHabits(cmd, ro, func(hs *habit.Store) error {
				changed, err := hs.ToggleDone(id, day)
				if err != nil {
					return err
				}
				if !changed {
					return notFound(cmd, id)
				}
				h, _ := hs.Habits().Find(id)
				verb := "Cleared"
				if h.DoneOn(timeline.Format(day)) {
					verb = "Done:"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n", verb, h.Name, timeline.Format(day))
				return nil
			})
		},
	}
	options.AddDateArg(cmd, do)
	parent.AddCommand(cmd)
}

func addHabitPin(parent *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "Toggle a habit's non-negotiable pin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withHabits(cmd, ro, func(hs *habit.Store) error {
				changed, err := hs.TogglePin(id)
				if err != nil {
					return err
				}
				if !changed {
					return notFound(cmd, id)
				}
				h, _ := hs.Habits().Find(id)
				if h.NonRemovable {
					fmt.Fprintf(cmd.OutOrStdout(), "Pinned %s\n", h.Name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Unpinned %s\n", h.Name)
				}
				return nil
			})
		},
	}
	parent.AddCommand(cmd)
}

func addHabitRemove(parent *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a habit and its history.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withHabits(cmd, ro, func(hs *habit.Store) error {
				h, found := hs.Habits().Find(id)
				changed, err := hs.Remove(id)
				if errors.Is(err, habit.ErrPinned) {
					return fmt.Errorf("%w; unpin it with `habitbox habit pin %d`", err, id)
				}
				if err != nil {
					return err
				}
				if !changed || !found {
					return notFound(cmd, id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", h.Name)
				return nil
			})
		},
	}
	parent.AddCommand(cmd)
}

func withHabits(cmd *cobra.Command, ro *rootOptions, fn func(*habit.Store) error) error {
	e, err := ro.open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()
	hs, err := e.habits()
	if err != nil {
		return err
	}
	return fn(hs)
}

// notFound reports an unknown id without failing the command; the stores
// treat unknown ids as no-ops.
func notFound(cmd *cobra.Command, id int64) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "no habit with id %d\n", id)
	return nil
}
