package normalize

// Outcome reports how normalization went. The normalizers never fail
// outward, but tests and logs still need to tell a fully extracted record
// from one that fell back to defaults.
type Outcome struct {
	// Defaulted is true when normalization recovered from an unexpected
	// failure and returned the minimal default record.
	Defaulted bool
	// Reason describes the failure that forced the default, empty otherwise.
	Reason string
}

// ok is the Outcome of a normalization that completed normally.
func ok() Outcome {
	return Outcome{}
}

// defaulted builds the Outcome for a recovered failure.
func defaulted(reason string) Outcome {
	return Outcome{Defaulted: true, Reason: reason}
}
