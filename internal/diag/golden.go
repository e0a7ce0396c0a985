package diag

import (
	"fmt"
	"sort"
	"strings"

	"lumen/internal/source"
)

// FormatValue renders an ArgValue the way the final renderer would: numbers
// in decimal, strings verbatim, lists joined with commas and a final "and".
// Used by golden tests; the production renderer lives outside this module.
func FormatValue(v ArgValue) string {
	switch v.Kind() {
	case ArgNumber:
		return v.Number().String()
	case ArgStr:
		return v.Str()
	case ArgStrList:
		return joinSepByAnd(v.list)
	}
	return ""
}

func joinSepByAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// FormatGoldenDiagnostics renders diagnostics into a stable,
// one-line-per-entry representation suitable for golden files: the main
// line followed by one indented line per label, note, and suggestion, in
// merge order. Arguments are sorted by name so the output does not depend
// on binding order.
func FormatGoldenDiagnostics(diags []*Diagnostic, fs *source.FileSet) string {
	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeGoldenDiagnostic(&b, d, fs)
	}
	return b.String()
}

func writeGoldenDiagnostic(b *strings.Builder, d *Diagnostic, fs *source.FileSet) {
	fmt.Fprintf(b, "%s %s %s", strings.ToLower(d.Severity.String()), d.Template, renderSpan(fs, d.Primary))

	args := d.Args()
	sort.Slice(args, func(i, j int) bool { return args[i].Name < args[j].Name })
	for _, a := range args {
		fmt.Fprintf(b, " %s=%s", a.Name, FormatValue(a.Value))
	}

	for _, l := range d.Labels {
		if l.Template != "" {
			fmt.Fprintf(b, "\n  label %s %s", renderSpan(fs, l.Span), l.Template)
		} else {
			fmt.Fprintf(b, "\n  label %s %q", renderSpan(fs, l.Span), l.Text)
		}
	}
	for _, n := range d.Notes {
		fmt.Fprintf(b, "\n  note %s %s", renderSpan(fs, n.Span), n.Template)
	}
	for _, s := range d.Suggestions {
		fmt.Fprintf(b, "\n  suggest %s %s %s %q", renderSpan(fs, s.Span), s.Template, s.Style, s.Replacement)
	}
}

func renderSpan(fs *source.FileSet, sp source.Span) string {
	if fs == nil {
		return sp.String()
	}
	f := fs.Get(sp.File)
	if f == nil || (sp.Empty() && sp.Start == 0) {
		return "-"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
}
