// Package diag defines the diagnostic argument model and the subdiagnostic
// composition layer shared by all compiler phases.
//
// # Purpose
//
//   - Convert heterogeneous internal values (numbers, identifiers, paths,
//     syntax fragments, target settings, backtraces) into a small closed set
//     of renderable argument shapes (ArgValue).
//   - Bind converted values to named template slots on a Diagnostic under
//     construction; templates are referenced by opaque TemplateKey and
//     resolved to text by the rendering layer.
//   - Compose secondary annotations (span labels, notes, suggestions) onto a
//     diagnostic via the Subdiag contract.
//
// # Scope
//
// Package diag performs no IO, no localization, and no terminal or
// machine-readable rendering. The only renderer here is the deterministic
// golden form used by tests. Severity policy (fatal vs. recoverable) belongs
// to callers.
//
// # Argument conversion
//
// Domain types implement IntoDiagArg to pick one of the three ArgValue
// shapes. The conversion is total: it never fails and never panics, for any
// value of the implementing type. Builtin types that cannot carry methods
// get package-level constructors (IntArg, UintArg, BoolArg, RuneArg,
// StrArg, PathArg, ErrArg). Types whose fmt.Stringer form is already the
// right rendering go through the FromDisplay adapter; a dedicated
// IntoDiagArg implementation always takes priority over that fallback, a
// choice made at the call site, not at runtime.
//
// # Subdiagnostics
//
// A Subdiag merges exactly once into a diagnostic under construction and
// never fails. Merge order is caller-determined and preserved. The concrete
// kinds follow three structural patterns: a label over one or more spans, a
// note (possibly carrying an emission location and backtrace), and a
// suggested source edit at a given SuggestionStyle.
//
// Keep the data model deterministic and side-effect free: conversions and
// merges are pure functions so diagnostics can be cached, serialized, and
// compared in tests.
package diag
