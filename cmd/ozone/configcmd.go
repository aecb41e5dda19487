package ozone

import (
	"io"

	goToml "github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/killzin666/ozone/errors"
)

// newConfigCommand prints ozone's default configuration as TOML, the same
// "config prints the default configuration to stdout" shape as the
// teacher's ctl.NewConfigCommand.
func newConfigCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration.",
		Long:  "config prints ozone's default configuration to stdout, in TOML.",
		RunE: func(c *cobra.Command, args []string) error {
			b, err := goToml.Marshal(*NewConfig())
			if err != nil {
				return errors.Wrap(err, "marshaling default config")
			}
			_, err = stdout.Write(b)
			return err
		},
	}
}
