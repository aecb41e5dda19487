package ozone

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/killzin666/ozone/errors"
	"github.com/killzin666/ozone/serialize"
)

// PartitionCommand loads a serialized store and prints fieldID's distinct
// values alongside each value's matching row count.
type PartitionCommand struct {
	*cmdIO

	StorePath string
	FieldID   string
}

// Run loads cmd.StorePath and writes the value -> row-count table for
// cmd.FieldID to cmd.Stdout, sorted by value for stable output.
func (cmd *PartitionCommand) Run(ctx context.Context) error {
	if cmd.StorePath == "" || cmd.FieldID == "" {
		return usageErrorf("partition requires a store file path and a field identifier")
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

	parts := cs.Partition(cmd.FieldID)
	keys := make([]string, 0, len(parts))
	for k := range parts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(cmd.Stdout, "%s\t%d\n", k, parts[k].Size())
	}
	return nil
}

func newPartitionCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &PartitionCommand{cmdIO: newCmdIO(stdin, stdout, stderr)}
	partitionCmd := &cobra.Command{
		Use:   "partition <store.json> <field>",
		Short: "Print a field's distinct values and their row counts.",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			cmd.StorePath = args[0]
			cmd.FieldID = args[1]
			return cmd.Run(c.Context())
		},
	}
	return partitionCmd
}
