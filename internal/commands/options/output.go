// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as a JSON object when --json is set, so scripted
// callers always get parseable output.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if o.JSON && err != nil {
		b, merr := json.Marshal(map[string]string{"error": err.Error()})
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	return err
}
