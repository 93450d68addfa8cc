// Package tracking parses shipment references out of delivery-note cells.
//
// The export writes references in three shapes, tried in order: explicit
// markup carrying a tracking link, a courier name followed by the tracking
// identifier ("fedex 445291890750"), or free text where only a digit-bearing
// token hints at the identifier. Links are synthesized from per-courier URL
// templates when the source carries none.
package tracking

import (
	"fmt"
	"regexp"
	"strings"
)

// Provider is a courier code resolved from the reference text.
type Provider string

const (
	ProviderFedEx   Provider = "FEDEX"
	ProviderUPS     Provider = "UPS"
	ProviderDHL     Provider = "DHL"
	ProviderGLS     Provider = "GLS"
	ProviderTNT     Provider = "TNT"
	ProviderBRT     Provider = "BRT"
	ProviderSDA     Provider = "SDA"
	ProviderUnknown Provider = "UNKNOWN"
)

// Reference is a parsed shipment reference.
type Reference struct {
	Provider Provider
	ID       string
	Link     string // empty when the provider is unknown and no explicit link exists
}

// Templates maps courier codes to tracking URL templates with one %s slot
// for the identifier.
type Templates map[Provider]string

// DefaultTemplates returns the built-in courier URL templates. The config
// layer may override individual entries.
func DefaultTemplates() Templates {
	return Templates{
		ProviderFedEx: "https://www.fedex.com/fedextrack/?trknbr=%s",
		ProviderUPS:   "https://www.ups.com/track?tracknum=%s",
		ProviderDHL:   "https://www.dhl.com/global-en/home/tracking.html?tracking-id=%s",
		ProviderGLS:   "https://gls-group.eu/track?match=%s",
		ProviderTNT:   "https://www.tnt.com/express/en_us/site/tracking.html?cons=%s",
		ProviderBRT:   "https://vas.brt.it/vas/sped_det_show.hsm?Nspediz=%s",
		ProviderSDA:   "https://www.sda.it/SITO_SDA-WEB/dettaglio.sda?tracing=%s",
	}
}

// providerPrefixes is checked against the upper-cased reference text; the
// first matching prefix wins. "FED EX" appears in older exports.
var providerPrefixes = []struct {
	prefix   string
	provider Provider
}{
	{"FEDEX", ProviderFedEx},
	{"FED EX", ProviderFedEx},
	{"UPS", ProviderUPS},
	{"DHL", ProviderDHL},
	{"GLS", ProviderGLS},
	{"TNT", ProviderTNT},
	{"BRT", ProviderBRT},
	{"SDA", ProviderSDA},
}

var (
	hrefPattern = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+)["']`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
	digitRun    = regexp.MustCompile(`\d`)
)

// Parse resolves a raw reference cell into a Reference. It reports ok=false
// when no identifier can be found at all; like the field parsers, it never
// fails on malformed input.
func Parse(raw string, templates Templates) (Reference, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Reference{}, false
	}

	var ref Reference

	// Tier 1: explicit markup link, taken verbatim.
	if m := hrefPattern.FindStringSubmatch(raw); m != nil {
		ref.Link = m[1]
	}

	text := strings.TrimSpace(tagPattern.ReplaceAllString(raw, " "))
	upper := strings.ToUpper(text)

	// Tier 2: known courier prefix, identifier trails the courier name.
	for _, p := range providerPrefixes {
		if strings.HasPrefix(upper, p.prefix) {
			ref.Provider = p.provider
			ref.ID = lastToken(text[len(p.prefix):])
			break
		}
	}

	// Tier 3: no courier matched; the last digit-bearing token is the
	// best available identifier.
	if ref.Provider == "" {
		ref.Provider = ProviderUnknown
		ref.ID = lastDigitToken(text)
	}

	if ref.ID == "" && ref.Link == "" {
		return Reference{}, false
	}

	if ref.Link == "" {
		if tmpl, ok := templates[ref.Provider]; ok && ref.ID != "" {
			ref.Link = fmt.Sprintf(tmpl, ref.ID)
		}
	}

	return ref, true
}

// lastToken returns the final whitespace-separated token of s.
func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// lastDigitToken returns the last token of s containing at least one digit.
func lastDigitToken(s string) string {
	fields := strings.Fields(s)
	for i := len(fields) - 1; i >= 0; i-- {
		if digitRun.MatchString(fields[i]) {
			return fields[i]
		}
	}
	return ""
}
