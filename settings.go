package toylog

// DefaultFormat is the template used when neither the defaults nor a level
// override set one.
const DefaultFormat = "[LEVEL]: TIMESTAMP - MESSAGE"

// DefaultSeparator joins the parts of a multi-part message in SingleLine mode.
const DefaultSeparator = "\n"

// Settings is the effective formatting and output policy of one dispatch.
type Settings struct {
	// SingleLine joins a multi-part message into exactly one rendered line.
	SingleLine bool
	// Format is the template; see Render.
	Format string
	// UseConsole writes each rendered line to the level's console function.
	UseConsole bool
	// UseStackTrace appends the caller's stack as a trailing line.
	UseStackTrace bool
	// Separator joins message parts when SingleLine is set.
	Separator string
}

// DefaultSettings returns the process-wide defaults. A fresh value is
// returned on every call so no caller can mutate another's view.
func DefaultSettings() Settings {
	return Settings{
		SingleLine:    false,
		Format:        DefaultFormat,
		UseConsole:    true,
		UseStackTrace: false,
		Separator:     DefaultSeparator,
	}
}

// Override is a partial Settings. Nil fields fall through to the layer below.
type Override struct {
	SingleLine    *bool
	Format        *string
	UseConsole    *bool
	UseStackTrace *bool
	Separator     *string
}

// Bool returns a pointer to v, for building Overrides inline.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for building Overrides inline.
func String(v string) *string { return &v }

// IsZero reports whether o sets no field at all.
func (o Override) IsZero() bool {
	return o.SingleLine == nil && o.Format == nil && o.UseConsole == nil &&
		o.UseStackTrace == nil && o.Separator == nil
}

// Merge returns o layered under top: every field set in top wins.
func (o Override) Merge(top Override) Override {
	out := o
	if top.SingleLine != nil {
		out.SingleLine = top.SingleLine
	}
	if top.Format != nil {
		out.Format = top.Format
	}
	if top.UseConsole != nil {
		out.UseConsole = top.UseConsole
	}
	if top.UseStackTrace != nil {
		out.UseStackTrace = top.UseStackTrace
	}
	if top.Separator != nil {
		out.Separator = top.Separator
	}
	return out
}

// Resolve applies o field by field on top of defaults.
func Resolve(defaults Settings, o Override) Settings {
	s := defaults
	if o.SingleLine != nil {
		s.SingleLine = *o.SingleLine
	}
	if o.Format != nil {
		s.Format = *o.Format
	}
	if o.UseConsole != nil {
		s.UseConsole = *o.UseConsole
	}
	if o.UseStackTrace != nil {
		s.UseStackTrace = *o.UseStackTrace
	}
	if o.Separator != nil {
		s.Separator = *o.Separator
	}
	return s
}
