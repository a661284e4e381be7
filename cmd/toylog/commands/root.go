// Package commands implements the CLI commands for toylog.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/toylog"
	"github.com/trickstertwo/toylog/config"
)

// version is set at build time via ldflags.
var version = "0.1.0"

// options holds the flag values shared by the subcommands.
type options struct {
	configPath string
	singleLine bool
	stack      bool
	noConsole  bool
	legacyTag  bool
	format     string
	separator  string
	tee        string
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "toylog",
		Short: "Emit and inspect per-level configured log lines",
		Long: `toylog drives the toylog logging facade from the command line.

Settings come from a toylog.{yaml,toml,json} file (current directory or
$XDG_CONFIG_HOME/toylog), TOYLOG_* environment variables and flags, in
increasing order of precedence.`,
		Example: `  # Log two lines at WARN
  toylog emit warn "disk almost full" "90% used"

  # Show what an ERROR line would look like
  toylog render error "payment failed"

  # List the effective settings of every level
  toylog levels --config ./toylog.yaml`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetVersionTemplate("toylog version {{.Version}}\n")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: search . and $XDG_CONFIG_HOME/toylog)")

	root.AddCommand(newEmitCmd(opts), newRenderCmd(opts), newLevelsCmd(opts))
	return root
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// formatFlags registers the settings flags shared by emit and render.
func formatFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "", "template with LEVEL, TIMESTAMP and MESSAGE tokens")
	f.BoolVar(&opts.singleLine, "single-line", false, "join message parts into one line")
	f.StringVar(&opts.separator, "separator", "", "separator used by --single-line")
	f.BoolVar(&opts.legacyTag, "legacy-tag", false, "render LOG as the level of every line")
}

// loadConfig reads the config file and layers the flags the user set over
// every level.
func (o *options) loadConfig(cmd *cobra.Command) (toylog.Config, error) {
	f, err := config.Load(o.configPath)
	if err != nil {
		return toylog.Config{}, err
	}
	cfg, err := f.ToConfig()
	if err != nil {
		return toylog.Config{}, err
	}

	flags := cmd.Flags()
	var top toylog.Override
	if flags.Changed("format") {
		top.Format = toylog.String(o.format)
	}
	if flags.Changed("single-line") {
		top.SingleLine = toylog.Bool(o.singleLine)
	}
	if flags.Changed("separator") {
		top.Separator = toylog.String(o.separator)
	}
	if flags.Changed("stack") {
		top.UseStackTrace = toylog.Bool(o.stack)
	}
	if flags.Changed("no-console") {
		top.UseConsole = toylog.Bool(!o.noConsole)
	}
	if flags.Changed("legacy-tag") {
		cfg.LegacyLevelTag = o.legacyTag
	}
	if top.IsZero() {
		return cfg, nil
	}

	levels := make(map[toylog.Level]toylog.LevelConfig, len(toylog.Levels()))
	for _, l := range toylog.Levels() {
		lc := cfg.Levels[l]
		lc.Override = lc.Override.Merge(top)
		levels[l] = lc
	}
	cfg.Levels = levels
	return cfg, nil
}
