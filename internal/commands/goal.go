package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"habitbox/internal/commands/options"
	"habitbox/internal/goal"
	"habitbox/internal/printers"
)

var errGoalsNotPersisted = errors.New("goals are not persisted; set persist_goals = true in the config to edit them from the command line")

func addGoal(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals", "g"},
		Short:   "Show and edit the goals checklist.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	addGoalList(cmd, ro)
	addGoalAdd(cmd, ro)
	addGoalToggle(cmd, ro)
	addGoalRemove(cmd, ro)
	topLevel.AddCommand(cmd)
}

func addGoalList(parent *cobra.Command, ro *rootOptions) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := func() error {
				e, err := ro.open(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer e.Close()
				gs, err := e.goals()
				if err != nil {
					return err
				}
				pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
				if oo.JSON {
					return pp.JSON(gs.Goals())
				}
				pp.Goals(e.cfg.GoalsTitle, gs.Goals())
				return nil
			}()
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addGoalAdd(parent *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a goal.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withGoals(cmd, ro, func(gs *goal.Store) error {
				text := strings.Join(args, " ")
				changed, err := gs.Add(text)
				if err != nil {
					return err
				}
				if !changed {
					fmt.Fprintln(cmd.ErrOrStderr(), "nothing added: goal text is blank")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added goal %q\n", strings.TrimSpace(text))
				return nil
			})
		},
	}
	parent.AddCommand(cmd)
}

func addGoalToggle(parent *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "toggle <index>",
		Aliases: []string{"done"},
		Short:   "Toggle a goal between open and done.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withGoals(cmd, ro, func(gs *goal.Store) error {
				changed, err := gs.Toggle(i)
				if err != nil {
					return err
				}
				if !changed {
					return goalNotFound(cmd, i)
				}
				g := gs.Goals()[i]
				state := "open"
				if g.Done {
					state = "done"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", g.Text, state)
				return nil
			})
		},
	}
	parent.AddCommand(cmd)
}

func addGoalRemove(parent *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a goal.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withGoals(cmd, ro, func(gs *goal.Store) error {
				before := gs.Goals()
				changed, err := gs.Remove(i)
				if err != nil {
					return err
				}
				if !changed {
					return goalNotFound(cmd, i)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", before[i].Text)
				return nil
			})
		},
	}
	parent.AddCommand(cmd)
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid goal index %q", s)
	}
	return i, nil
}

func withGoals(cmd *cobra.Command, ro *rootOptions, fn func(*goal.Store) error) error {
	e, err := ro.open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()
	if !e.cfg.PersistGoals {
		return errGoalsNotPersisted
	}
	gs, err := e.goals()
	if err != nil {
		return err
	}
	return fn(gs)
}

func goalNotFound(cmd *cobra.Command, i int) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "no goal at index %d\n", i)
	return nil
}
