package ast

import (
	"lumen/internal/source"
)

// Expr is a parsed expression fragment. Diagnostics quote expressions via
// the dedicated printer in print.go, never via their Go representation.
type Expr interface {
	Span() source.Span
	isExpr()
}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	Sp   source.Span
	Name string
}

// LitExpr is a literal as written in source.
type LitExpr struct {
	Sp   source.Span
	Text string
}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	Sp      source.Span
	Op      string
	Operand Expr
}

// BinaryExpr is an infix operator application.
type BinaryExpr struct {
	Sp    source.Span
	Op    string
	Left  Expr
	Right Expr
}

// CallExpr is a function call.
type CallExpr struct {
	Sp     source.Span
	Callee Expr
	Args   []Expr
}

// PathExpr is a `::`-separated item path used in expression position.
type PathExpr struct {
	Sp   source.Span
	Path Path
}

func (e IdentExpr) Span() source.Span  { return e.Sp }
func (e LitExpr) Span() source.Span    { return e.Sp }
func (e UnaryExpr) Span() source.Span  { return e.Sp }
func (e BinaryExpr) Span() source.Span { return e.Sp }
func (e CallExpr) Span() source.Span   { return e.Sp }
func (e PathExpr) Span() source.Span   { return e.Sp }

func (IdentExpr) isExpr()  {}
func (LitExpr) isExpr()    {}
func (UnaryExpr) isExpr()  {}
func (BinaryExpr) isExpr() {}
func (CallExpr) isExpr()   {}
func (PathExpr) isExpr()   {}

// Path is a `::`-separated item path.
type Path struct {
	Sp       source.Span
	Segments []string
}

func (p Path) Span() source.Span { return p.Sp }
