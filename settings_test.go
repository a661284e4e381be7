package toylog

import "testing"

func TestResolve_FieldWise(t *testing.T) {
	t.Parallel()

	defaults := Settings{SingleLine: false, Format: "F", UseConsole: true, UseStackTrace: false, Separator: "/"}
	got := Resolve(defaults, Override{UseConsole: Bool(false)})
	want := Settings{SingleLine: false, Format: "F", UseConsole: false, UseStackTrace: false, Separator: "/"}
	if got != want {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolve_EveryField(t *testing.T) {
	t.Parallel()

	o := Override{
		SingleLine:    Bool(true),
		Format:        String("MESSAGE"),
		UseConsole:    Bool(false),
		UseStackTrace: Bool(true),
		Separator:     String(" | "),
	}
	got := Resolve(DefaultSettings(), o)
	want := Settings{SingleLine: true, Format: "MESSAGE", UseConsole: false, UseStackTrace: true, Separator: " | "}
	if got != want {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolve_EmptyOverrideKeepsDefaults(t *testing.T) {
	t.Parallel()

	if got := Resolve(DefaultSettings(), Override{}); got != DefaultSettings() {
		t.Fatalf("Resolve() = %+v, want defaults", got)
	}
}

func TestOverride_Merge(t *testing.T) {
	t.Parallel()

	base := Override{UseConsole: Bool(false), Format: String("a")}
	top := Override{Format: String("b"), SingleLine: Bool(true)}
	m := base.Merge(top)

	if m.UseConsole == nil || *m.UseConsole {
		t.Fatalf("UseConsole should stay false from base, got %v", m.UseConsole)
	}
	if m.Format == nil || *m.Format != "b" {
		t.Fatalf("Format should come from top, got %v", m.Format)
	}
	if m.SingleLine == nil || !*m.SingleLine {
		t.Fatalf("SingleLine should come from top, got %v", m.SingleLine)
	}
	if m.UseStackTrace != nil || m.Separator != nil {
		t.Fatalf("unset fields must stay nil: %+v", m)
	}
	if base.Format == nil || *base.Format != "a" {
		t.Fatalf("Merge mutated receiver: %+v", base)
	}
	if !(Override{}).IsZero() || m.IsZero() {
		t.Fatal("IsZero mismatch")
	}
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	if s.SingleLine || !s.UseConsole || s.UseStackTrace {
		t.Fatalf("unexpected default flags: %+v", s)
	}
	if s.Format != "[LEVEL]: TIMESTAMP - MESSAGE" {
		t.Fatalf("default format = %q", s.Format)
	}
	s.Format = "mutated"
	if DefaultSettings().Format != DefaultFormat {
		t.Fatal("DefaultSettings must return a fresh value")
	}
}
