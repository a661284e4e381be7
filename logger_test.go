package toylog

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

// levelRecorder is a Console whose per-level lines can be inspected.
type levelRecorder struct {
	mu    sync.Mutex
	lines map[Level][]string
}

func newLevelRecorder() (*levelRecorder, Console) {
	r := &levelRecorder{lines: make(map[Level][]string)}
	var c Console
	for _, l := range Levels() {
		c[l] = func(line string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.lines[l] = append(r.lines[l], line)
			return nil
		}
	}
	return r, c
}

func (r *levelRecorder) get(l Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines[l]...)
}

var frozenAt = time.Date(1984, 4, 4, 0, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T, cfg Config) (*Logger, *levelRecorder) {
	t.Helper()
	rec, console := newLevelRecorder()
	if cfg.Console.IsZero() {
		cfg.Console = console
	}
	if cfg.Clock == nil {
		cfg.Clock = xclock.NewFrozen(frozenAt)
	}
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return l, rec
}

func TestLevelMethods_InvokeSyncAndAsyncCallbacksOnce(t *testing.T) {
	t.Parallel()

	type call func(*Logger) error
	methods := map[Level]call{
		LevelDebug: func(l *Logger) error { return l.Debug("debug") },
		LevelInfo:  func(l *Logger) error { return l.Info("info") },
		LevelLog:   func(l *Logger) error { return l.Log("log") },
		LevelWarn:  func(l *Logger) error { return l.Warn("warn") },
		LevelError: func(l *Logger) error { return l.Error("error") },
	}

	for level, fn := range methods {
		t.Run(level.String(), func(t *testing.T) {
			t.Parallel()

			var blocking, async, asyncDone atomic.Int32
			syncCB := Sync(func(string) { blocking.Add(1) })
			asyncCB := Async(func(string) <-chan error {
				async.Add(1)
				done := make(chan error, 1)
				go func() {
					time.Sleep(20 * time.Millisecond)
					asyncDone.Add(1)
					done <- nil
				}()
				return done
			})

			l, _ := newTestLogger(t, Config{
				Levels: map[Level]LevelConfig{
					level: {Callbacks: []Callback{syncCB, asyncCB}},
				},
			})

			if err := fn(l); err != nil {
				t.Fatalf("%s: %v", level, err)
			}
			if blocking.Load() != 1 || async.Load() != 1 {
				t.Fatalf("callbacks invoked %d/%d times, want 1/1", blocking.Load(), async.Load())
			}
			if asyncDone.Load() != 1 {
				t.Fatal("level method returned before the async callback settled")
			}
		})
	}
}

func TestAddCallback_AfterConstruction(t *testing.T) {
	t.Parallel()

	l, _ := newTestLogger(t, Config{})
	var calls atomic.Int32
	fn := func(string) error { calls.Add(1); return nil }

	if err := l.Log(""); err != nil {
		t.Fatalf("log: %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected 0 calls before registration, got %d", calls.Load())
	}

	if err := l.AddCallback(LevelLog, fn); err != nil {
		t.Fatalf("add callback: %v", err)
	}
	if err := l.Log(""); err != nil {
		t.Fatalf("log: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 call after registration, got %d", calls.Load())
	}
	if l.Callbacks(LevelLog) != 1 || l.Callbacks(LevelInfo) != 0 {
		t.Fatal("registration must only touch its own level")
	}
}

func TestAddCallback_KeepsSettingsAndOrder(t *testing.T) {
	t.Parallel()

	var order []int
	var mu sync.Mutex
	mk := func(i int) Callback {
		return func(string) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, i)
			return nil
		}
	}
	l, rec := newTestLogger(t, Config{
		Levels: map[Level]LevelConfig{
			LevelWarn: {Override: Override{Format: String("w:MESSAGE")}, Callbacks: []Callback{mk(0)}},
		},
	})
	if err := l.AddCallback(LevelWarn, mk(1), mk(2)); err != nil {
		t.Fatalf("add callback: %v", err)
	}
	if l.Callbacks(LevelWarn) != 3 {
		t.Fatalf("callbacks = %d, want 3", l.Callbacks(LevelWarn))
	}
	if err := l.Warn("x"); err != nil {
		t.Fatalf("warn: %v", err)
	}
	if got := rec.get(LevelWarn); len(got) != 1 || got[0] != "w:x" {
		t.Fatalf("settings changed by registration: %q", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("callbacks must start in registration order, got %v", order)
	}
}

func TestLevelMethod_CallbackStartOrderAcrossLines(t *testing.T) {
	t.Parallel()

	type start struct{ line, cb int }
	var (
		mu     sync.Mutex
		starts []start
	)
	mk := func(cb int) Callback {
		return func(line string) error {
			mu.Lock()
			defer mu.Unlock()
			starts = append(starts, start{line: int(line[len(line)-1] - '0'), cb: cb})
			return nil
		}
	}
	l, _ := newTestLogger(t, Config{
		Defaults: Override{Format: String("MESSAGE")},
		Levels: map[Level]LevelConfig{
			LevelInfo: {Callbacks: []Callback{mk(0), mk(1)}},
		},
	})
	if err := l.AddCallback(LevelInfo, mk(2)); err != nil {
		t.Fatalf("add callback: %v", err)
	}

	for run := 0; run < 200; run++ {
		mu.Lock()
		starts = starts[:0]
		mu.Unlock()

		if err := l.Info("line0", "line1"); err != nil {
			t.Fatalf("info: %v", err)
		}

		mu.Lock()
		got := append([]start(nil), starts...)
		mu.Unlock()
		if len(got) != 6 {
			t.Fatalf("run %d: starts = %v", run, got)
		}
		for i, s := range got {
			if s.line != i/3 || s.cb != i%3 {
				t.Fatalf("run %d: start %d = %+v, full order %v", run, i, s, got)
			}
		}
	}
}

func TestEmptyMessage_WithStackTrace(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var last atomic.Value
	l, rec := newTestLogger(t, Config{
		Levels: map[Level]LevelConfig{
			LevelInfo: {
				Override: Override{UseStackTrace: Bool(true), Format: String("MESSAGE")},
				Callbacks: []Callback{func(line string) error {
					calls.Add(1)
					last.Store(line)
					return nil
				}},
			},
		},
	})

	if err := l.Info(); err != nil {
		t.Fatalf("info: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("callback invocations = %d, want 1 (the stack line)", calls.Load())
	}
	if line, _ := last.Load().(string); !strings.Contains(line, "TestEmptyMessage_WithStackTrace") {
		t.Fatalf("stack line = %q", line)
	}
	if got := rec.get(LevelInfo); len(got) != 1 {
		t.Fatalf("console lines = %q", got)
	}
}

func TestAddCallback_Validation(t *testing.T) {
	t.Parallel()

	l, _ := newTestLogger(t, Config{})
	if err := l.AddCallback(Level(7), Sync(func(string) {})); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if err := l.AddCallback(LevelInfo, nil); !errors.Is(err, ErrNilCallback) {
		t.Fatalf("expected ErrNilCallback, got %v", err)
	}
	if l.Callbacks(LevelInfo) != 0 {
		t.Fatal("a rejected registration must not append")
	}
}

func TestSettingsPriority(t *testing.T) {
	t.Parallel()

	l, rec := newTestLogger(t, Config{
		Levels: map[Level]LevelConfig{
			LevelWarn: {Override: Override{UseConsole: Bool(true)}},
		},
		Defaults: Override{UseConsole: Bool(false)},
	})

	if err := l.Log("msg"); err != nil {
		t.Fatalf("log: %v", err)
	}
	if got := rec.get(LevelLog); len(got) != 0 {
		t.Fatalf("log must not reach the console, got %q", got)
	}

	if err := l.Warn("msg"); err != nil {
		t.Fatalf("warn: %v", err)
	}
	if got := rec.get(LevelWarn); len(got) != 1 {
		t.Fatalf("warn must reach the console once, got %q", got)
	}
}

func TestListMessage_SingleLineToggle(t *testing.T) {
	t.Parallel()

	var multi, single recorder
	l, _ := newTestLogger(t, Config{
		Defaults: Override{Format: String("MESSAGE"), UseConsole: Bool(false)},
		Levels: map[Level]LevelConfig{
			LevelInfo:  {Callbacks: []Callback{multi.callback}},
			LevelError: {Override: Override{SingleLine: Bool(true), Separator: String(",")}, Callbacks: []Callback{single.callback}},
		},
	})

	if err := l.Info("a", "b"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if err := l.Error("a", "b"); err != nil {
		t.Fatalf("error: %v", err)
	}

	got := multi.snapshot()
	if len(got) != 2 {
		t.Fatalf("multi-line: expected 2 lines, got %q", got)
	}
	if got := single.snapshot(); len(got) != 1 || got[0] != "a,b" {
		t.Fatalf("single-line: got %q", got)
	}
}

func TestEmptyListMessage(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	l, rec := newTestLogger(t, Config{
		Levels: map[Level]LevelConfig{
			LevelInfo: {Callbacks: []Callback{func(string) error { calls.Add(1); return nil }}},
		},
	})
	if err := l.Info(); err != nil {
		t.Fatalf("info: %v", err)
	}
	if calls.Load() != 0 || len(rec.get(LevelInfo)) != 0 {
		t.Fatal("an empty message must produce no output")
	}
}

func TestLevelTag(t *testing.T) {
	t.Parallel()

	for _, legacy := range []bool{false, true} {
		l, rec := newTestLogger(t, Config{LegacyLevelTag: legacy})
		if err := l.Error("boom"); err != nil {
			t.Fatalf("error: %v", err)
		}
		want := "[ERROR]: 1984-04-04T00:00:00.000Z - boom"
		if legacy {
			want = "[LOG]: 1984-04-04T00:00:00.000Z - boom"
		}
		if got := rec.get(LevelError); len(got) != 1 || got[0] != want {
			t.Fatalf("legacy=%v: got %q want %q", legacy, got, want)
		}
	}
}

func TestCallbackError_FailsLevelMethod(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var after atomic.Int32
	l, rec := newTestLogger(t, Config{
		Levels: map[Level]LevelConfig{
			LevelError: {Callbacks: []Callback{
				func(string) error { return boom },
				func(string) error { after.Add(1); return nil },
			}},
		},
	})

	err := l.Error("a", "b")
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if after.Load() != 2 {
		t.Fatalf("healthy callback ran %d times, want 2", after.Load())
	}
	if got := rec.get(LevelError); len(got) != 2 {
		t.Fatalf("console output must not be undone, got %q", got)
	}
	if s := l.Stats(); s.Dispatches != 1 || s.Lines != 2 || s.Failures != 1 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestDispatch_InFlightSnapshot(t *testing.T) {
	t.Parallel()

	l, _ := newTestLogger(t, Config{Defaults: Override{UseConsole: Bool(false)}})
	var late atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	first := func(string) error {
		close(started)
		<-release
		return nil
	}
	if err := l.AddCallback(LevelInfo, first); err != nil {
		t.Fatalf("add: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- l.Info("x") }()

	<-started
	if err := l.AddCallback(LevelInfo, func(string) error { late.Add(1); return nil }); err != nil {
		t.Fatalf("add: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("info: %v", err)
	}
	if late.Load() != 0 {
		t.Fatal("callback registered mid-dispatch joined the in-flight dispatch")
	}
}

func TestSettingsAccessor(t *testing.T) {
	t.Parallel()

	l, _ := newTestLogger(t, Config{
		Defaults: Override{Format: String("D")},
		Levels: map[Level]LevelConfig{
			LevelDebug: {Override: Override{UseStackTrace: Bool(true)}},
		},
	})
	s := l.Settings(LevelDebug)
	if s.Format != "D" || !s.UseStackTrace || !s.UseConsole {
		t.Fatalf("debug settings = %+v", s)
	}
	if s := l.Settings(LevelInfo); s.UseStackTrace {
		t.Fatalf("info settings = %+v", s)
	}
}

func TestStackTraceStartsAtCaller(t *testing.T) {
	t.Parallel()

	l, rec := newTestLogger(t, Config{
		Levels: map[Level]LevelConfig{
			LevelDebug: {Override: Override{UseStackTrace: Bool(true), Format: String("MESSAGE")}},
		},
	})
	if err := l.Debug("here"); err != nil {
		t.Fatalf("debug: %v", err)
	}
	got := rec.get(LevelDebug)
	if len(got) != 2 || got[0] != "here" {
		t.Fatalf("expected message plus stack, got %q", got)
	}
	first := strings.SplitN(got[1], "\n", 2)[0]
	if !strings.Contains(first, "TestStackTraceStartsAtCaller") {
		t.Fatalf("stack must start at the caller, first frame %q", first)
	}
}

type countingMetrics struct {
	mu    sync.Mutex
	calls map[Level]int
	lines int
	errs  int
}

func (m *countingMetrics) Dispatched(level Level, _ float64, lines int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[level]++
	m.lines += lines
	if err != nil {
		m.errs++
	}
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	m := &countingMetrics{calls: make(map[Level]int)}
	l, _ := newTestLogger(t, Config{Metrics: m})
	_ = l.Info("a", "b")
	_ = l.Warn()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls[LevelInfo] != 1 || m.calls[LevelWarn] != 1 || m.lines != 2 || m.errs != 0 {
		t.Fatalf("metrics = %+v", m)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Levels: map[Level]LevelConfig{Level(5): {}}}); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if _, err := New(Config{Levels: map[Level]LevelConfig{LevelInfo: {Callbacks: []Callback{nil}}}}); !errors.Is(err, ErrNilCallback) {
		t.Fatalf("expected ErrNilCallback, got %v", err)
	}
	if err := Default().Dispatch(Level(9), "x"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}
