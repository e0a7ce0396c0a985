package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
	// SevBug marks an internal compiler error that was delayed and later
	// flushed.
	SevBug
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevBug:
		return "BUG"
	}
	return "UNKNOWN"
}

// severityLabels maps each severity to its canonical message-facing label.
// The table is total over the enum; severity_test.go walks every variant.
var severityLabels = map[Severity]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
	SevBug:     "internal compiler error",
}

// IntoDiagArg converts via the canonical label table.
func (s Severity) IntoDiagArg() ArgValue {
	if label, ok := severityLabels[s]; ok {
		return StrValue(label)
	}
	return StrValue("UNKNOWN")
}
