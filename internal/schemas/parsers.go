// Package schemas holds the built-in document-type layouts for the
// back-office export: where each field lives within the page cycle, how its
// cells parse, and how cycles are recognized. A registry maps type names to
// layouts, and a YAML override file can adjust cycle sizes and anchors
// without a rebuild.
package schemas

import (
	"github.com/archibald-tools/archex/internal/engine"
	"github.com/archibald-tools/archex/internal/fieldparse"
	"github.com/archibald-tools/archex/internal/tracking"
)

// The adapters below lift the locale converters into engine parsers.
// Absent-on-failure is deliberate: a cell the converter rejects becomes an
// absent field, and row validity is decided by Required flags, not here.

func textParser(raw string) engine.Value {
	s, ok := fieldparse.Text(raw)
	if !ok {
		return engine.Absent()
	}
	return engine.TextValue(s)
}

func collapsedTextParser(raw string) engine.Value {
	s, ok := fieldparse.CollapsedText(raw)
	if !ok {
		return engine.Absent()
	}
	return engine.TextValue(s)
}

func integerParser(raw string) engine.Value {
	n, ok := fieldparse.Integer(raw)
	if !ok {
		return engine.Absent()
	}
	return engine.IntValue(n)
}

func decimalParser(raw string) engine.Value {
	f, ok := fieldparse.Decimal(raw)
	if !ok {
		return engine.Absent()
	}
	return engine.DecimalValue(f)
}

func dateParser(raw string) engine.Value {
	t, ok := fieldparse.Date(raw)
	if !ok {
		return engine.Absent()
	}
	return engine.DateValue(t)
}

func dateTimeParser(raw string) engine.Value {
	t, ok := fieldparse.DateTime(raw)
	if !ok {
		return engine.Absent()
	}
	return engine.DateTimeValue(t)
}

// Shipment references are one raw cell carrying up to three output fields.
// Each parser re-runs the reference parse on the same cell and projects a
// different component; the parse is cheap enough that sharing state across
// fields is not worth the coupling.

func trackingNumberParser(tmpl tracking.Templates) engine.ParserFunc {
	return func(raw string) engine.Value {
		ref, ok := tracking.Parse(raw, tmpl)
		if !ok || ref.ID == "" {
			return engine.Absent()
		}
		return engine.TextValue(ref.ID)
	}
}

func trackingCourierParser(tmpl tracking.Templates) engine.ParserFunc {
	return func(raw string) engine.Value {
		ref, ok := tracking.Parse(raw, tmpl)
		if !ok {
			return engine.Absent()
		}
		return engine.TextValue(string(ref.Provider))
	}
}

func trackingURLParser(tmpl tracking.Templates) engine.ParserFunc {
	return func(raw string) engine.Value {
		ref, ok := tracking.Parse(raw, tmpl)
		if !ok || ref.Link == "" {
			return engine.Absent()
		}
		return engine.TextValue(ref.Link)
	}
}
