package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/trickstertwo/toylog"
)

// openTee opens the --tee destination. Replaced in tests.
var openTee = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

// emitTee dispatches with an extra callback appending to path. A failed
// close is a failed write and is reported with the dispatch error.
func emitTee(logger *toylog.Logger, level toylog.Level, path string, msg []string) (err error) {
	w, err := openTee(path)
	if err != nil {
		return errors.Wrap(err, "open tee file")
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = multierr.Append(err, errors.Wrap(cerr, "close tee file"))
		}
	}()
	if err := logger.AddCallback(level, toylog.WriterCallback(w)); err != nil {
		return err
	}
	return logger.Dispatch(level, msg...)
}

func newEmitCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit <level> [message...]",
		Short: "Log a message at a level",
		Long: `Log a message at a level. Every message argument is one part of the
message and becomes its own line unless --single-line is set.
The command fails when the console or the --tee file could not be written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := toylog.ParseLevel(args[0])
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Console = toylog.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())

			logger, err := toylog.New(cfg)
			if err != nil {
				return err
			}
			if opts.tee == "" {
				return logger.Dispatch(level, args[1:]...)
			}
			return emitTee(logger, level, opts.tee, args[1:])
		},
	}
	formatFlags(cmd, opts)
	f := cmd.Flags()
	f.BoolVar(&opts.stack, "stack", false, "append the stack trace as a trailing line")
	f.BoolVar(&opts.noConsole, "no-console", false, "do not write to stdout/stderr")
	f.StringVar(&opts.tee, "tee", "", "also append every rendered line to this file")
	return cmd
}
