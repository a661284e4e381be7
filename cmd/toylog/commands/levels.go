package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/toylog"
)

func newLevelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the levels with their effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := toylog.New(cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LEVEL\tSINGLE_LINE\tUSE_CONSOLE\tUSE_STACK_TRACE\tSEPARATOR\tFORMAT")
			for _, l := range toylog.Levels() {
				s := logger.Settings(l)
				fmt.Fprintf(w, "%s\t%t\t%t\t%t\t%q\t%q\n",
					l, s.SingleLine, s.UseConsole, s.UseStackTrace, s.Separator, s.Format)
			}
			return w.Flush()
		},
	}
}
