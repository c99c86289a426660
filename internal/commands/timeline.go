package commands

import (
	"github.com/spf13/cobra"

	"habitbox/internal/commands/options"
	"habitbox/internal/printers"
	"habitbox/internal/timeline"
)

type timelineCell struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Done  bool   `json:"done"`
}

type timelineRow struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Columns []timelineCell `json:"columns"`
}

func addTimeline(topLevel *cobra.Command, ro *rootOptions) {
	oo := &options.OutputOptions{}
	do := &options.DateOptions{}
	cmd := &cobra.Command{
		Use:       "timeline [week|month|year]",
		Aliases:   []string{"chart"},
		Short:     "Show habit completion over a week, month or year.",
		ValidArgs: []string{"week", "month", "year"},
		Example: `
habitbox timeline
habitbox timeline month --date 2024-02-01
habitbox timeline year --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := func() error {
				e, err := ro.open(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer e.Close()

				name := e.cfg.DefaultTimeline
				if len(args) == 1 {
					name = args[0]
				}
				mode, err := timeline.ParseMode(name)
				if err != nil {
					return err
				}
				ref, err := do.Day(ro.now)
				if err != nil {
					return err
				}
				hs, err := e.habits()
				if err != nil {
					return err
				}

				pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
				if !oo.JSON {
					pp.Timeline(hs.Habits(), mode, ref)
					return nil
				}
				cols := timeline.Columns(mode, ref)
				rows := make([]timelineRow, 0, len(hs.Habits()))
				for _, h := range hs.Habits() {
					r := timelineRow{ID: h.ID, Name: h.Name, Columns: make([]timelineCell, len(cols))}
					for i, c := range cols {
						d := timeline.Format(c.Date)
						r.Columns[i] = timelineCell{Label: c.Label, Date: d, Done: h.DoneOn(d)}
					}
					rows = append(rows, r)
				}
				return pp.JSON(rows)
			}()
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddDateArg(cmd, do)
	topLevel.AddCommand(cmd)
}
