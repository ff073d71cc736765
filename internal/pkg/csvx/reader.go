// Package csvx reads ';'-delimited legacy exports in Windows-1252 with
// best-effort decoding, normalized headers and total field coercion.
package csvx

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DateLayout is the fixed day/month/year format the legacy exports use.
const DateLayout = "02/01/2006"

var separatorRuns = regexp.MustCompile(`[\s.\-]+`)

// NormalizeHeader maps header-spelling variants to one canonical key: trim,
// lowercase, collapse runs of spaces/hyphens/dots to '_', strip diacritics.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = separatorRuns.ReplaceAllString(h, "_")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if s, _, err := transform.String(t, h); err == nil {
		h = s
	}
	return h
}

// Record is one data row keyed by canonical header.
type Record map[string]string

// Str returns the trimmed field value, or "" when absent.
func (r Record) Str(key string) string {
	return strings.TrimSpace(r[key])
}

// Int returns the field as an integer, or def when absent or malformed.
func (r Record) Int(key string, def int) int {
	s := r.Str(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Float returns the field as a float, or nil when absent or malformed.
func (r Record) Float(key string) *float64 {
	s := r.Str(key)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Date returns the field parsed as dd/mm/yyyy UTC, or nil when absent or
// malformed.
func (r Record) Date(key string) *time.Time {
	s := r.Str(key)
	if s == "" {
		return nil
	}
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &d
}

// Reader streams Records from a legacy export. Bad bytes never fail the
// decode; structural read errors are returned to the caller.
type Reader struct {
	csv     *csv.Reader
	headers []string
}

// NewReader wraps r with a lossy Windows-1252 decode and a permissive csv
// reader, and consumes the header row.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	raw, err := cr.Read()
	if err != nil {
		return nil, err
	}
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = NormalizeHeader(h)
	}
	return &Reader{csv: cr, headers: headers}, nil
}

// Headers returns the canonical header keys in file order.
func (r *Reader) Headers() []string {
	return r.headers
}

// Read returns the next record, or io.EOF at end of file. Short rows simply
// leave the trailing keys absent.
func (r *Reader) Read() (Record, error) {
	raw, err := r.csv.Read()
	if err != nil {
		return nil, err
	}
	rec := make(Record, len(r.headers))
	for i, h := range r.headers {
		if i >= len(raw) {
			break
		}
		rec[h] = raw[i]
	}
	return rec, nil
}
