package ozone

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/killzin666/ozone/errors"
	"github.com/killzin666/ozone/serialize"
	"github.com/killzin666/ozone/store"
)

// DescribeCommand loads a serialized store and prints a human-readable
// field summary table, grounded on the teacher's ctl/inspect.go
// summarize-a-store commands.
type DescribeCommand struct {
	*cmdIO

	StorePath string
}

// Run loads cmd.StorePath and writes store.Describe's field summaries to
// cmd.Stdout as a tab-aligned table.
func (cmd *DescribeCommand) Run(ctx context.Context) error {
	if cmd.StorePath == "" {
		return usageErrorf("describe requires a store file path")
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

	tw := tabwriter.NewWriter(cmd.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tDISPLAY NAME\tTYPE\tSHAPE\tDISTINCT")
	for _, s := range store.Describe(cs) {
		shape := "unindexed"
		if s.Indexed {
			shape = "indexed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", s.Identifier, s.DisplayName, s.TypeOfValue, shape, s.DistinctValueEstimate)
	}
	return tw.Flush()
}

func newDescribeCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &DescribeCommand{cmdIO: newCmdIO(stdin, stdout, stderr)}
	describeCmd := &cobra.Command{
		Use:   "describe <store.json>",
		Short: "Print a table of field metadata for a store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cmd.StorePath = args[0]
			return cmd.Run(c.Context())
		},
	}
	return describeCmd
}
