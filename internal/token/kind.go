package token

import (
	"lumen/internal/diag"
)

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a string literal.
	StringLit

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwOwn represents the 'own' keyword.
	KwOwn // own
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwReturn represents the 'return' keyword.
	KwReturn // return

	// Assign represents '='.
	Assign // =
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Comma represents ','.
	Comma // ,
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Semicolon represents ';'.
	Semicolon // ;

	kindCount // keep last
)

// kindStrings is the printable form of each kind, total over the enum;
// kind_test.go walks every variant.
var kindStrings = [kindCount]string{
	Invalid:    "<invalid>",
	EOF:        "<eof>",
	Ident:      "identifier",
	IntLit:     "integer literal",
	StringLit:  "string literal",
	KwFn:       "fn",
	KwLet:      "let",
	KwOwn:      "own",
	KwPub:      "pub",
	KwReturn:   "return",
	Assign:     "=",
	Colon:      ":",
	ColonColon: "::",
	Comma:      ",",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Semicolon:  ";",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "<invalid>"
	}
	return kindStrings[k]
}

// IsKeyword reports whether the kind is a language keyword.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwFn, KwLet, KwOwn, KwPub, KwReturn:
		return true
	default:
		return false
	}
}

// IntoDiagArg converts via the token pretty-printer.
func (k Kind) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(k.String())
}
