package diag

import (
	"lumen/internal/source"
)

// Subdiag attaches a secondary annotation onto a diagnostic under
// construction. AddToDiag is a one-shot merge: it mutates the diagnostic
// exactly once, never fails, and composes safely with other merges in
// caller order. A Subdiag value is consumed by the merge and never
// retained.
type Subdiag interface {
	AddToDiag(d *Diagnostic)
}

// SingleLabelManySpans applies one static label while highlighting several
// spans that all play the same syntactic role.
type SingleLabelManySpans struct {
	Spans []source.Span
	Label string
}

func (s SingleLabelManySpans) AddToDiag(d *Diagnostic) {
	d.SpanLabels(s.Spans, s.Label)
}

// ExpectedTypeParameter labels the place where count type parameters were
// expected.
type ExpectedTypeParameter struct {
	Span  source.Span
	Count int
}

func (s ExpectedTypeParameter) AddToDiag(d *Diagnostic) {
	d.Arg("count", IntArg(s.Count))
	d.LabelKey(s.Span, KeyExpectedTypeParameter)
}

// DelayedAtWithNewline explains where a delayed bug was recorded, with the
// backtrace note separated from the preceding text by a newline.
type DelayedAtWithNewline struct {
	Span      source.Span
	EmittedAt Location
	Note      Backtrace
}

func (s DelayedAtWithNewline) AddToDiag(d *Diagnostic) {
	d.ArgOf("emitted_at", s.EmittedAt)
	d.ArgOf("note", s.Note)
	d.NoteKey(s.Span, KeyDelayedAtWithNewline)
}

// DelayedAtWithoutNewline is DelayedAtWithNewline for notes that render
// inline after the main message.
type DelayedAtWithoutNewline struct {
	Span      source.Span
	EmittedAt Location
	Note      Backtrace
}

func (s DelayedAtWithoutNewline) AddToDiag(d *Diagnostic) {
	d.ArgOf("emitted_at", s.EmittedAt)
	d.ArgOf("note", s.Note)
	d.NoteKey(s.Span, KeyDelayedAtWithoutNewline)
}

// InvalidFlushedDelayedLevel notes that a delayed diagnostic was flushed at
// an unexpected severity level.
type InvalidFlushedDelayedLevel struct {
	Span  source.Span
	Level Severity
}

func (s InvalidFlushedDelayedLevel) AddToDiag(d *Diagnostic) {
	d.ArgOf("level", s.Level)
	d.NoteKey(s.Span, KeyInvalidFlushedDelayedLevel)
}

// IndicateAnonymousOwner suggests writing count explicit owner annotations,
// always showing the suggested text inline.
type IndicateAnonymousOwner struct {
	Span       source.Span
	Count      int
	Suggestion string
}

func (s IndicateAnonymousOwner) AddToDiag(d *Diagnostic) {
	d.Arg("count", IntArg(s.Count))
	d.Arg("suggestion", StrArg(s.Suggestion))
	d.Suggest(s.Span, KeyIndicateAnonymousOwner, s.Suggestion, SuggestionVerbose)
}
