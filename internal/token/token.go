package token

import (
	"lumen/internal/diag"
	"lumen/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// String returns the token's source form when it carries text, falling back
// to the kind's printable form for fixed tokens.
func (t Token) String() string {
	switch t.Kind {
	case Ident, IntLit, StringLit:
		if t.Text != "" {
			return t.Text
		}
	}
	return t.Kind.String()
}

// IntoDiagArg converts via the token pretty-printer: identifiers and
// literals render their source text, fixed tokens their canonical form.
func (t Token) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(t.String())
}
