package ozone

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killzin666/ozone/errors"
	"github.com/killzin666/ozone/serialize"
)

// FilterCommand loads a serialized store, applies one ValueFilter per
// field=value pair, and reports the matching row count (and, with
// ShowRows, the matching row-ids).
type FilterCommand struct {
	*cmdIO

	StorePath string
	FieldVals []string
	ShowRows  bool
}

// Run loads cmd.StorePath, applies every field=value pair in order via
// repeated FilteredView.FilterByValue calls, and writes the result to
// cmd.Stdout.
func (cmd *FilterCommand) Run(ctx context.Context) error {
	if cmd.StorePath == "" {
		return usageErrorf("filter requires a store file path")
	}
	if len(cmd.FieldVals) == 0 {
		return usageErrorf("filter requires at least one field=value pair")
	}

	f, err := os.Open(cmd.StorePath)
	if err != nil {
		return errors.Wrap(err, "opening store file")
	}
	defer f.Close()

	cs, err := serialize.ReadStore(f)
	if err != nil {
		return errors.Wrap(err, "reading store")
	}

	fieldName, value, err := splitFilterPair(cmd.FieldVals[0])
	if err != nil {
		return err
	}
	view := cs.FilterByValue(fieldName, value)
	for _, pair := range cmd.FieldVals[1:] {
		fieldName, value, err = splitFilterPair(pair)
		if err != nil {
			return err
		}
		view = view.FilterByValue(fieldName, value)
	}

	fmt.Fprintf(cmd.Stdout, "rows: %d\n", view.Size())
	if cmd.ShowRows {
		view.EachRow(func(row int) {
			fmt.Fprintf(cmd.Stdout, "%d\n", row)
		})
	}
	return nil
}

func splitFilterPair(pair string) (fieldName, value string, err error) {
	parts := strings.SplitN(pair, "=", 2)
	if len(parts) != 2 {
		return "", "", usageErrorf("expected field=value, got %q", pair)
	}
	return parts[0], parts[1], nil
}

func newFilterCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &FilterCommand{cmdIO: newCmdIO(stdin, stdout, stderr)}
	filterCmd := &cobra.Command{
		Use:   "filter <store.json> <field>=<value> [<field>=<value> ...]",
		Short: "Filter a column store by one or more field values.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			cmd.StorePath = args[0]
			cmd.FieldVals = args[1:]
			return cmd.Run(c.Context())
		},
	}
	filterCmd.Flags().BoolVar(&cmd.ShowRows, "rows", false, "Also print every matching row-id.")
	return filterCmd
}
