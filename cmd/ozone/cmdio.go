package ozone

import (
	"io"

	"github.com/killzin666/ozone/logger"
)

// cmdIO holds standard unix inputs/outputs plus a logger, the same shape as
// the teacher's CmdIO, embedded in each subcommand's command struct.
type cmdIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	log    logger.Logger
}

func newCmdIO(stdin io.Reader, stdout, stderr io.Writer) *cmdIO {
	return &cmdIO{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		log:    logger.NewStandardLogger(stderr),
	}
}

func (c *cmdIO) Logger() logger.Logger { return c.log }
