// Package emit writes reconstructed records to the output stream, one
// record per line as JSON or as CSV with a header row.
package emit

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/archibald-tools/archex/internal/engine"
)

// Format names an output encoding.
type Format string

const (
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
)

// ParseFormat validates a format name from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSONL, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want jsonl or csv)", s)
	}
}

// Writer emits records in one format. Close flushes buffered output; it
// does not close the underlying stream.
type Writer interface {
	Write(rec *engine.Record) error
	Close() error
}

// New returns a Writer for the format. fields is the output column order,
// used by the CSV header.
func New(format Format, w io.Writer, fields []string) (Writer, error) {
	switch format {
	case FormatJSONL:
		return &jsonlWriter{w: bufio.NewWriter(w)}, nil
	case FormatCSV:
		return &csvWriter{w: csv.NewWriter(w), fields: fields}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type jsonlWriter struct {
	w *bufio.Writer
}

func (j *jsonlWriter) Write(rec *engine.Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if _, err := j.w.Write(line); err != nil {
		return err
	}
	return j.w.WriteByte('\n')
}

func (j *jsonlWriter) Close() error {
	return j.w.Flush()
}

type csvWriter struct {
	w           *csv.Writer
	fields      []string
	wroteHeader bool
}

func (c *csvWriter) Write(rec *engine.Record) error {
	if !c.wroteHeader {
		if err := c.w.Write(c.fields); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	row := make([]string, len(c.fields))
	for i, name := range c.fields {
		row[i] = rec.Get(name).String()
	}
	return c.w.Write(row)
}

func (c *csvWriter) Close() error {
	c.w.Flush()
	return c.w.Error()
}
