package toylog

// Facade helpers using the global Singleton logger.
// Usage: toylog.Warn("disk almost full")

func Debug(msg ...string) error { return L().emit(LevelDebug, msg) }
func Info(msg ...string) error  { return L().emit(LevelInfo, msg) }
func Log(msg ...string) error   { return L().emit(LevelLog, msg) }
func Warn(msg ...string) error  { return L().emit(LevelWarn, msg) }
func Error(msg ...string) error { return L().emit(LevelError, msg) }

func AddCallback(level Level, cbs ...Callback) error { return L().AddCallback(level, cbs...) }
