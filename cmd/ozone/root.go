package ozone

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds ozone's command tree, the same
// stdin/stdout/stderr-threaded shape as the teacher's cmd.NewRootCommand.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var timeoutCancel context.CancelFunc
	rc := &cobra.Command{
		Use:   "ozone",
		Short: "ozone builds, filters, partitions, and describes in-memory column stores.",
		Long: `ozone is a small column-store engine: build one from a CSV file, filter or
partition it by field value, and describe its fields, all against the
store's lossless JSON serialization.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := setAllConfig(v, cmd.Flags()); err != nil {
				return err
			}

			timeoutStr, err := cmd.Flags().GetString("timeout")
			if err != nil {
				return fmt.Errorf("problem getting timeout flag: %v", err)
			}
			if timeoutStr != "" && timeoutStr != "0" && timeoutStr != "0s" {
				d, err := time.ParseDuration(timeoutStr)
				if err != nil {
					return fmt.Errorf("invalid --timeout %q: %v", timeoutStr, err)
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), d)
				timeoutCancel = cancel
				cmd.SetContext(ctx)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if timeoutCancel != nil {
				timeoutCancel()
			}
		},
		SilenceUsage: true,
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	rc.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging flag; the commands log at info level whether or not it is set.")
	rc.PersistentFlags().String("timeout", "0s", "Deadline set on the command's context (e.g. 30s); 0 disables. The subcommands do not check the context, so a running command is not interrupted.")

	rc.AddCommand(newBuildCommand(stdin, stdout, stderr))
	rc.AddCommand(newFilterCommand(stdin, stdout, stderr))
	rc.AddCommand(newPartitionCommand(stdin, stdout, stderr))
	rc.AddCommand(newDescribeCommand(stdin, stdout, stderr))
	rc.AddCommand(newConfigCommand(stdin, stdout, stderr))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

func usageErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("usage: "+format, args...)
}
