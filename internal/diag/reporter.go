package diag

// Reporter is the minimal contract phases use to emit diagnostics without
// coupling to concrete storage.
type Reporter interface {
	Report(d *Diagnostic)
}

// BagReporter collects reported diagnostics into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d *Diagnostic) {
	if r.Bag == nil || d == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(*Diagnostic) {}
