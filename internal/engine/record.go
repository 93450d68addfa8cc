// Package engine reassembles records whose fields are scattered across the
// repeating page cycles of a paginated table export. It detects the cycle
// size, aligns rows positionally across the pages of each cycle, filters
// structurally invalid rows, and streams the surviving records lazily.
package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind discriminates the typed values a field can hold.
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindInt
	KindDecimal
	KindDate
	KindDateTime
)

// Value is a typed field value. The zero Value is absent.
type Value struct {
	kind Kind
	str  string
	num  int64
	dec  float64
	ts   time.Time
}

// Absent returns the absent value.
func Absent() Value { return Value{} }

// TextValue wraps a string.
func TextValue(s string) Value { return Value{kind: KindText, str: s} }

// IntValue wraps an integer.
func IntValue(n int64) Value { return Value{kind: KindInt, num: n} }

// DecimalValue wraps a decimal number.
func DecimalValue(f float64) Value { return Value{kind: KindDecimal, dec: f} }

// DateValue wraps a calendar date.
func DateValue(t time.Time) Value { return Value{kind: KindDate, ts: t} }

// DateTimeValue wraps a timestamp.
func DateTimeValue(t time.Time) Value { return Value{kind: KindDateTime, ts: t} }

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the string payload of a text value.
func (v Value) Text() string { return v.str }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.num }

// Decimal returns the decimal payload.
func (v Value) Decimal() float64 { return v.dec }

// Time returns the time payload of a date or datetime value.
func (v Value) Time() time.Time { return v.ts }

// String renders the value for CSV output. Absent renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.dec, 'f', -1, 64)
	case KindDate:
		return v.ts.Format("2006-01-02")
	case KindDateTime:
		return v.ts.Format("2006-01-02T15:04:05")
	default:
		return ""
	}
}

// appendJSON renders the value as a JSON token. Absent renders null so
// downstream consumers can tell a missing field from an empty one.
func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindText:
		b, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.num, 10))
	case KindDecimal:
		buf.WriteString(strconv.FormatFloat(v.dec, 'f', -1, 64))
	case KindDate:
		fmt.Fprintf(buf, "%q", v.ts.Format("2006-01-02"))
	case KindDateTime:
		fmt.Fprintf(buf, "%q", v.ts.Format("2006-01-02T15:04:05"))
	default:
		buf.WriteString("null")
	}
	return nil
}

// Record is one reassembled record: field names in schema order with their
// typed values.
type Record struct {
	fields []string
	values []Value
	hidden []bool
	index  map[string]int
	pkRaw  string
}

// NewRecord allocates a record with the given field order.
func NewRecord(fields []string) *Record {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f] = i
	}
	return &Record{
		fields: fields,
		values: make([]Value, len(fields)),
		hidden: make([]bool, len(fields)),
		index:  idx,
	}
}

// Hide marks the named field as excluded from output. Hidden fields stay
// readable through Get so finalizers can consume them.
func (r *Record) Hide(name string) {
	if i, ok := r.index[name]; ok {
		r.hidden[i] = true
	}
}

// Fields returns the field names in output order. Callers must not mutate
// the returned slice.
func (r *Record) Fields() []string { return r.fields }

// Get returns the value of the named field, absent if the record has no
// such field.
func (r *Record) Get(name string) Value {
	i, ok := r.index[name]
	if !ok {
		return Absent()
	}
	return r.values[i]
}

// Set assigns the named field. Unknown names are ignored.
func (r *Record) Set(name string, v Value) {
	if i, ok := r.index[name]; ok {
		r.values[i] = v
	}
}

// PrimaryKeyRaw returns the raw, pre-parse text of the primary key cell.
func (r *Record) PrimaryKeyRaw() string { return r.pkRaw }

// MarshalJSON renders the record as a JSON object preserving schema field
// order, so identical inputs always produce byte-identical output.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for i, name := range r.fields {
		if r.hidden[i] {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := r.values[i].appendJSON(&buf); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
