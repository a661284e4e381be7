package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/toylog"
)

// Config is an explicit, code-first configuration for zap + toylog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer        io.Writer // default: os.Stdout
	MinLevel      toylog.Level
	Console       bool                  // console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	// Logger is the rest of the toylog configuration. Its Console is
	// replaced by the zap table.
	Logger toylog.Config
}

// Use builds a zap-backed toylog logger from Config, wires it as the global
// toylog logger, and returns it together with the zap logger so the caller
// can Sync it on shutdown.
func Use(cfg Config) (*toylog.Logger, *zap.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Rendered lines already carry their timestamp and level.
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			LevelKey:    "level",
			MessageKey:  "message",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel)))
	zl := zap.New(core)

	tcfg := cfg.Logger
	tcfg.Console = Console(zl)
	logger, err := toylog.New(tcfg)
	if err != nil {
		return nil, nil, err
	}

	toylog.SetGlobal(logger)
	return logger, zl, nil
}
