package ast

import (
	"strings"

	"lumen/internal/diag"
)

// ExprString pretty-prints an expression fragment for inclusion in a
// diagnostic message. Unknown or nil nodes print as a placeholder instead
// of failing: quoting is total.
func ExprString(e Expr) string {
	var sb strings.Builder
	printExpr(&sb, e)
	return sb.String()
}

// PathString pretty-prints an item path.
func PathString(p Path) string {
	return strings.Join(p.Segments, "::")
}

func printExpr(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case IdentExpr:
		sb.WriteString(e.Name)
	case LitExpr:
		sb.WriteString(e.Text)
	case UnaryExpr:
		sb.WriteString(e.Op)
		printOperand(sb, e.Operand)
	case BinaryExpr:
		printOperand(sb, e.Left)
		sb.WriteByte(' ')
		sb.WriteString(e.Op)
		sb.WriteByte(' ')
		printOperand(sb, e.Right)
	case CallExpr:
		printOperand(sb, e.Callee)
		sb.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			printExpr(sb, arg)
		}
		sb.WriteByte(')')
	case PathExpr:
		sb.WriteString(PathString(e.Path))
	default:
		sb.WriteString("<expr>")
	}
}

// printOperand parenthesizes nested operator applications so the printed
// fragment reads unambiguously.
func printOperand(sb *strings.Builder, e Expr) {
	switch e.(type) {
	case BinaryExpr, UnaryExpr:
		sb.WriteByte('(')
		printExpr(sb, e)
		sb.WriteByte(')')
	default:
		printExpr(sb, e)
	}
}

// ExprArg converts an expression fragment via the dedicated printer.
// Defined on the interface's package rather than per node so every future
// node kind is covered by the same total printer.
func ExprArg(e Expr) diag.ArgValue {
	return diag.StrValue(ExprString(e))
}

// IntoDiagArg converts a path via the dedicated printer.
func (p Path) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(PathString(p))
}
