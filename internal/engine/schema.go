package engine

// ColumnMatch selects how a field locates its source column within a slot's
// table: by header substring or by fixed position.
type ColumnMatch int

const (
	// MatchHeader locates the column whose header contains the field's
	// label, case-insensitively.
	MatchHeader ColumnMatch = iota
	// MatchIndex takes the column at a fixed index, for slots whose pages
	// carry no usable header row.
	MatchIndex
)

// ParserFunc converts a raw cell into a typed value. Parsers are total:
// unparseable input yields the absent value, never an error.
type ParserFunc func(raw string) Value

// FieldSpec describes one output field: which slot page it lives on, how to
// find its column there, and how to parse the cell.
type FieldSpec struct {
	// Name is the output field name.
	Name string
	// Slot is the zero-based page offset within the cycle.
	Slot int
	// Match selects header-substring or fixed-index column resolution.
	Match ColumnMatch
	// Label is the header substring for MatchHeader fields.
	Label string
	// Column is the fixed column index for MatchIndex fields.
	Column int
	// Parse converts the raw cell text. Nil means TextValue.
	Parse ParserFunc
	// Required marks fields whose absence invalidates the whole row.
	Required bool
	// Hidden fields are assembled and visible to Finalize but excluded
	// from output. Used for working values that feed a combined field.
	Hidden bool
}

// Schema describes one document type: its field layout across the cycle,
// the primary-key field, and how cycles are recognized.
type Schema struct {
	// Name is the document-type name used in diagnostics and the registry.
	Name string
	// Fields lists the output fields in emission order.
	Fields []FieldSpec
	// PrimaryKey names the field whose value decides row validity.
	PrimaryKey string
	// AnchorLabel is the header substring that recurs on the first page of
	// every cycle. Cycle detection measures the distance between its
	// occurrences.
	AnchorLabel string
	// DefaultCycle is the expected cycle size, used when detection fails
	// and compared against the detected size for diagnostics.
	DefaultCycle int
	// Valid, when set, rejects assembled records whose values are out of
	// range even though every required field parsed.
	Valid func(*Record) bool
	// Finalize, when set, post-processes each surviving record just
	// before it is yielded. Cross-field cleanups live here.
	Finalize func(*Record)
}

// FieldNames returns all field names, hidden included, in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// OutputFieldNames returns the field names that appear in emitted records,
// in emission order.
func (s *Schema) OutputFieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if !f.Hidden {
			names = append(names, f.Name)
		}
	}
	return names
}

// SlotCount returns the number of distinct slots the schema reads from,
// which is at most the cycle size.
func (s *Schema) SlotCount() int {
	max := 0
	for _, f := range s.Fields {
		if f.Slot+1 > max {
			max = f.Slot + 1
		}
	}
	return max
}
