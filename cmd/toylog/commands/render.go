package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/toylog"
)

func newRenderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <level> <message>",
		Short: "Print the line a message would render to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := toylog.ParseLevel(args[0])
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := toylog.New(cfg)
			if err != nil {
				return err
			}

			tag := level
			if cfg.LegacyLevelTag {
				tag = toylog.LevelLog
			}
			line := toylog.Render(logger.Settings(level).Format, tag, toylog.Timestamp(xclock.Now()), args[1])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
	formatFlags(cmd, opts)
	return cmd
}
