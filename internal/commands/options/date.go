package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"habitbox/internal/timeline"
)

// DateOptions lets a command act on a day other than today.
type DateOptions struct {
	Date string
}

func AddDateArg(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Day to use instead of today (YYYY-MM-DD).")
}

// Day resolves the flag, falling back to the current day from now.
func (o *DateOptions) Day(now func() time.Time) (time.Time, error) {
	if o.Date == "" {
		return timeline.Day(now()), nil
	}
	d, err := timeline.ParseDate(o.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", o.Date)
	}
	return d, nil
}
