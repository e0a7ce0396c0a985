package diag

import (
	"lumen/internal/source"
)

// Argument binds a named template slot to a converted value. Names are
// unique within one diagnostic; binding is by name, never by position.
type Argument struct {
	Name  string
	Value ArgValue
}

// Label annotates one span. Text carries a static annotation string;
// Template references a localized label instead. Exactly one of the two is
// set.
type Label struct {
	Span     source.Span
	Text     string
	Template TemplateKey
}

// Note is a secondary message attached under the main diagnostic.
type Note struct {
	Span     source.Span
	Template TemplateKey
}

// SuggestionStyle controls how a suggested edit is rendered.
type SuggestionStyle uint8

const (
	// SuggestionHidden names the edit without showing code.
	SuggestionHidden SuggestionStyle = iota
	// SuggestionShort shows the edit inline when it fits.
	SuggestionShort
	// SuggestionVerbose always shows the suggested text inline.
	SuggestionVerbose
)

func (s SuggestionStyle) String() string {
	switch s {
	case SuggestionHidden:
		return "hidden"
	case SuggestionShort:
		return "short"
	case SuggestionVerbose:
		return "verbose"
	}
	return "unknown"
}

// Suggestion is a proposed source edit: replace the span with Replacement,
// described by a localized template.
type Suggestion struct {
	Span        source.Span
	Template    TemplateKey
	Replacement string
	Style       SuggestionStyle
}

// Diagnostic is a message under construction: a severity, a template key,
// a primary span, named argument bindings, and secondary parts in merge
// order. It is exclusively owned by the single call sequence building it.
type Diagnostic struct {
	Severity Severity
	Template TemplateKey
	Primary  source.Span

	args     []Argument
	argIndex map[string]int

	Labels      []Label
	Notes       []Note
	Suggestions []Suggestion
}

// New starts a diagnostic for the given template. The primary span may be
// zero for diagnostics without a source location (target configuration
// errors, delayed bugs).
func New(sev Severity, template TemplateKey, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Template: template,
		Primary:  primary,
	}
}

// Arg binds a named argument. Rebinding a name overwrites the previous
// value, keeping names unique within the diagnostic.
func (d *Diagnostic) Arg(name string, value ArgValue) *Diagnostic {
	if d.argIndex == nil {
		d.argIndex = make(map[string]int)
	}
	if i, ok := d.argIndex[name]; ok {
		d.args[i].Value = value
		return d
	}
	d.argIndex[name] = len(d.args)
	d.args = append(d.args, Argument{Name: name, Value: value})
	return d
}

// ArgOf converts v via its capability and binds the result.
func (d *Diagnostic) ArgOf(name string, v IntoDiagArg) *Diagnostic {
	return d.Arg(name, v.IntoDiagArg())
}

// Args returns the bound arguments in insertion order. The slice is a copy.
func (d *Diagnostic) Args() []Argument {
	cp := make([]Argument, len(d.args))
	copy(cp, d.args)
	return cp
}

// LookupArg returns the value bound to name.
func (d *Diagnostic) LookupArg(name string) (ArgValue, bool) {
	i, ok := d.argIndex[name]
	if !ok {
		return ArgValue{}, false
	}
	return d.args[i].Value, true
}

// SpanLabel attaches a static label string to one span.
func (d *Diagnostic) SpanLabel(sp source.Span, text string) *Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Text: text})
	return d
}

// SpanLabels attaches the same static label to several spans, preserving
// span order.
func (d *Diagnostic) SpanLabels(spans []source.Span, text string) *Diagnostic {
	for _, sp := range spans {
		d.SpanLabel(sp, text)
	}
	return d
}

// LabelKey attaches a localized label to one span.
func (d *Diagnostic) LabelKey(sp source.Span, key TemplateKey) *Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Template: key})
	return d
}

// NoteKey appends a localized note.
func (d *Diagnostic) NoteKey(sp source.Span, key TemplateKey) *Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Template: key})
	return d
}

// Suggest appends a suggested edit.
func (d *Diagnostic) Suggest(sp source.Span, key TemplateKey, replacement string, style SuggestionStyle) *Diagnostic {
	d.Suggestions = append(d.Suggestions, Suggestion{
		Span:        sp,
		Template:    key,
		Replacement: replacement,
		Style:       style,
	})
	return d
}

// Merge applies subdiagnostics in the given order. Each one mutates the
// diagnostic exactly once and never fails; composing several is always
// safe.
func (d *Diagnostic) Merge(parts ...Subdiag) *Diagnostic {
	for _, p := range parts {
		p.AddToDiag(d)
	}
	return d
}
