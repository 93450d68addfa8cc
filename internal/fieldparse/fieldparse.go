// Package fieldparse holds the locale-aware scalar converters used when
// turning raw table cells into typed field values.
//
// Every function is total: unparsable or empty input reports ok=false and
// never returns an error. The legacy exports use Italian conventions
// throughout ("." thousands separator, "," decimal separator, DD/MM/YYYY
// dates, trailing currency/percent symbols).
package fieldparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04:05"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Text trims surrounding whitespace. Empty input is absent.
func Text(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// CollapsedText trims and additionally collapses internal whitespace runs
// (including newlines) to single spaces. Used for multiline cells such as
// delivery addresses.
func CollapsedText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return whitespaceRun.ReplaceAllString(s, " "), true
}

// Integer parses a cleaned digit string. Any non-digit content is absent.
func Integer(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Decimal parses an amount in the exporter's locale: "." as thousands
// separator, "," as decimal separator, optional trailing currency or
// percent symbol. "1.234,56 €" parses to 1234.56.
func Decimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Date parses DD/MM/YYYY.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateTime parses DD/MM/YYYY HH:MM:SS.
func DateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
