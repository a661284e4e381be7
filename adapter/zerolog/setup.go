package zerologadapter

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/toylog"
)

// Config is an explicit, code-first configuration for zerolog + toylog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer   io.Writer // default: os.Stdout
	MinLevel toylog.Level
	Console  bool // zerolog.ConsoleWriter instead of JSON
	// Logger is the rest of the toylog configuration. Its Console is
	// replaced by the zerolog table.
	Logger toylog.Config
}

// Use builds a zerolog-backed toylog logger from Config, wires it as the
// global toylog logger, and returns it.
func Use(cfg Config) (*toylog.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Rendered lines carry their own timestamp; no zerolog time column.
	var zl zerolog.Logger
	if cfg.Console {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:          w,
			NoColor:      !toylog.SupportsColor(w),
			PartsExclude: []string{zerolog.TimestampFieldName},
		})
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(mapLevel(cfg.MinLevel))

	tcfg := cfg.Logger
	tcfg.Console = Console(zl)
	logger, err := toylog.New(tcfg)
	if err != nil {
		return nil, err
	}

	toylog.SetGlobal(logger)
	return logger, nil
}
