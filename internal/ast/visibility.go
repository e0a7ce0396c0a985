package ast

import (
	"strings"

	"lumen/internal/diag"
)

// Visibility describes the accessibility of an item (private/public).
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	default:
		return "private"
	}
}

// Prefix returns the visibility as written before an item, including the
// separating space. Private items carry no marker in source.
func (v Visibility) Prefix() string {
	if v == VisPublic {
		return "pub "
	}
	return ""
}

// IntoDiagArg converts via the pretty-printed source form, trimmed of the
// incidental trailing space.
func (v Visibility) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(strings.TrimRight(v.Prefix(), " "))
}
