package engine

import "strings"

// Filter decides which assembled rows are real records. The export pads
// short pages with placeholder rows and appends footer totals; both must be
// dropped by structure, not by guesswork.
type Filter struct {
	// Sentinels are primary-key texts that mark placeholder rows.
	Sentinels []string
	// FooterPrefixes are raw primary-key prefixes that mark footer rows,
	// such as the totals line's "Count=".
	FooterPrefixes []string
}

// DefaultFilter returns the filter matching the export's known placeholder
// and footer conventions.
func DefaultFilter() Filter {
	return Filter{
		Sentinels:      []string{"0"},
		FooterPrefixes: []string{"Count="},
	}
}

// Keep reports whether a row with the given parsed primary key and raw
// primary-key cell text is a real record.
func (f Filter) Keep(pk Value, raw string) bool {
	if pk.IsAbsent() {
		return false
	}
	trimmed := strings.TrimSpace(raw)
	for _, s := range f.Sentinels {
		if trimmed == s {
			return false
		}
	}
	for _, p := range f.FooterPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return false
		}
	}
	return true
}
