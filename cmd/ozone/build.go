package ozone

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killzin666/ozone/errors"
	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/ingest"
	"github.com/killzin666/ozone/serialize"
)

// BuildCommand runs CSV ingestion through the row-store reducer and writes
// the resulting store's serialized JSON, the same
// flags-on-a-struct/Run(ctx) shape as the teacher's ctl.ExportCommand.
type BuildCommand struct {
	*cmdIO

	Path   string
	Out    string
	Fields []string

	Delimiter string
	Quote     string
}

// Run executes the build: read cmd.Path as CSV, reduce it into a
// ColumnStore per the parsed field specs, and write the serialized result
// to cmd.Out (or Stdout).
func (cmd *BuildCommand) Run(ctx context.Context) error {
	if cmd.Path == "" {
		return usageErrorf("build requires a CSV file path")
	}
	if len(cmd.Fields) == 0 {
		return usageErrorf("build requires at least one --field spec")
	}

	f, err := os.Open(cmd.Path)
	if err != nil {
		return errors.Wrap(err, "opening input file")
	}
	defer f.Close()

	src := ingest.NewCSVSource(f)
	if cmd.Delimiter != "" {
		src.Delimiter = []rune(cmd.Delimiter)[0]
	}
	if cmd.Quote != "" {
		src.Quote = []rune(cmd.Quote)[0]
	}

	specs := make([]ingest.FieldSpec, 0, len(cmd.Fields))
	for _, raw := range cmd.Fields {
		spec, err := parseFieldSpec(raw)
		if err != nil {
			return errors.Wrapf(err, "field spec %q", raw)
		}
		specs = append(specs, spec)
	}

	cs, err := ingest.BuildFromStore(src, ingest.BuildParams{Fields: specs, Logger: cmd.Logger()})
	if err != nil {
		return errors.Wrap(err, "building store")
	}

	w := cmd.Stdout
	if cmd.Out != "" {
		out, err := os.Create(cmd.Out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer out.Close()
		w = out
	}

	if err := serialize.WriteStore(w, cs); err != nil {
		return errors.Wrap(err, "writing store")
	}
	cmd.Logger().Infof("built store: %d rows, %d fields", cs.Size(), len(cs.Fields()))
	return nil
}

// parseFieldSpec parses one --field value of the form
// "identifier:type[:class]", where type is string|number|boolean|object and
// the optional class is indexed|unindexed (default: auto).
func parseFieldSpec(raw string) (ingest.FieldSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return ingest.FieldSpec{}, errors.New(errors.ErrCodePrecondition,
			fmt.Sprintf("expected identifier:type[:class], got %q", raw))
	}
	spec := ingest.FieldSpec{Identifier: parts[0]}
	switch field.ValueType(parts[1]) {
	case field.TypeString, field.TypeNumber, field.TypeBoolean, field.TypeObject:
		spec.TypeOfValue = field.ValueType(parts[1])
	default:
		return ingest.FieldSpec{}, errors.New(errors.ErrCodePrecondition,
			fmt.Sprintf("unrecognized value type %q", parts[1]))
	}
	if len(parts) >= 3 {
		switch parts[2] {
		case "indexed":
			spec.Class = ingest.ClassIndexed
		case "unindexed":
			spec.Class = ingest.ClassUnindexed
		case "auto", "":
			spec.Class = ingest.ClassAuto
		default:
			return ingest.FieldSpec{}, errors.New(errors.ErrCodePrecondition,
				fmt.Sprintf("unrecognized field class %q", parts[2]))
		}
	}
	return spec, nil
}

func newBuildCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &BuildCommand{cmdIO: newCmdIO(stdin, stdout, stderr), Delimiter: ",", Quote: "\""}
	buildCmd := &cobra.Command{
		Use:   "build <csv-file>",
		Short: "Build a column store from a CSV file.",
		Long: `build runs CSV ingestion through the row-store reducer and writes the
resulting store's serialized JSON to stdout, or to the file named by --out.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cmd.Path = args[0]
			return cmd.Run(c.Context())
		},
	}

	flags := buildCmd.Flags()
	flags.StringVarP(&cmd.Out, "out", "o", "", "File to write the serialized store to (default stdout).")
	flags.StringArrayVar(&cmd.Fields, "field", nil, "Field spec identifier:type[:class]; repeatable.")
	flags.StringVar(&cmd.Delimiter, "delimiter", ",", "CSV field delimiter.")
	flags.StringVar(&cmd.Quote, "quote", "\"", "CSV quote character.")

	return buildCmd
}
