// Package toylog is a small per-level configurable logging facade.
//
// Each of the five levels (DEBUG, INFO, LOG, WARN, ERROR) carries its own
// partial Settings override on top of logger-wide defaults, its own console
// function and an append-only list of callbacks. A level method renders the
// message through the level's template, optionally appends a stack trace
// line, writes the console synchronously and fans every rendered line out to
// every callback. It returns once all callbacks have settled; the error
// aggregates every failed callback and console write.
//
//	logger, _ := toylog.New(toylog.Config{
//	    Levels: map[toylog.Level]toylog.LevelConfig{
//	        toylog.LevelError: {Callbacks: []toylog.Callback{ship}},
//	    },
//	})
//	err := logger.Error("payment failed", "order 42")
//
// Templates use the literal tokens LEVEL, TIMESTAMP and MESSAGE; each is
// replaced once. The default template is "[LEVEL]: TIMESTAMP - MESSAGE".
//
// Backends live in adapter/: zap, zerolog and slog console tables and a
// Prometheus MetricsCollector. Package config loads settings with viper.
package toylog
