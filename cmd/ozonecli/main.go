// This is the entrypoint for the ozone binary.
package main

import (
	"fmt"
	"os"

	"github.com/killzin666/ozone/cmd/ozone"
)

func main() {
	rootCmd := ozone.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
