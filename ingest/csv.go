package ingest

import (
	"bufio"
	"io"
	"strings"

	"github.com/killzin666/ozone/errors"
)

// CSVSource reads UTF-8 CSV text: the first row sets column names,
// subsequent rows are parsed into Rows keyed by column name (spec §6).
// Fields are separated by Delimiter (default ',') and may be wrapped in
// Quote (default '"'); a doubled quote inside a quoted field is a literal
// quote, and newlines inside quoted fields are supported.
//
// Grounded on idk/csv/source.go's "first row is schema, rest are records"
// shape; implemented as its own scanner rather than stdlib encoding/csv
// because encoding/csv's quote character isn't configurable, and this
// spec's wire format explicitly is (spec §6).
type CSVSource struct {
	Delimiter rune
	Quote     rune

	r       *bufio.Reader
	header  []string
	started bool
}

// NewCSVSource returns a CSVSource with the spec's default delimiter (',')
// and quote ('"').
func NewCSVSource(r io.Reader) *CSVSource {
	return &CSVSource{Delimiter: ',', Quote: '"', r: bufio.NewReader(r)}
}

// Header returns the column names read from the first row. Valid only
// after the first call to Next.
func (s *CSVSource) Header() []string {
	return append([]string(nil), s.header...)
}

func (s *CSVSource) Next() (Row, error) {
	if !s.started {
		s.started = true
		header, err := s.readRecord()
		if err != nil {
			return nil, err
		}
		s.header = header
	}
	fields, err := s.readRecord()
	if err != nil {
		return nil, err
	}
	row := make(Row, len(s.header))
	for i, name := range s.header {
		if i < len(fields) {
			row[name] = fields[i]
		} else {
			row[name] = ""
		}
	}
	return row, nil
}

// readRecord reads one logical CSV record, which may span multiple physical
// lines if a field is quoted and contains embedded newlines.
func (s *CSVSource) readRecord() ([]string, error) {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	sawAnyRune := false

	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				if inQuotes {
					return nil, errors.New(errors.ErrCodeMalformedStore, "csv: unterminated quoted field")
				}
				if !sawAnyRune {
					return nil, io.EOF
				}
				fields = append(fields, cur.String())
				return fields, nil
			}
			return nil, err
		}
		sawAnyRune = true

		switch {
		case inQuotes:
			if r == s.Quote {
				next, _, peekErr := s.r.ReadRune()
				if peekErr == nil && next == s.Quote {
					cur.WriteRune(s.Quote) // doubled quote -> literal quote
				} else {
					if peekErr == nil {
						_ = s.r.UnreadRune()
					}
					inQuotes = false
				}
			} else {
				cur.WriteRune(r)
			}
		case r == s.Quote && cur.Len() == 0:
			inQuotes = true
		case r == s.Delimiter:
			fields = append(fields, cur.String())
			cur.Reset()
		case r == '\n':
			fields = append(fields, cur.String())
			return trimCR(fields), nil
		default:
			cur.WriteRune(r)
		}
	}
}

func trimCR(fields []string) []string {
	if len(fields) == 0 {
		return fields
	}
	last := fields[len(fields)-1]
	fields[len(fields)-1] = strings.TrimSuffix(last, "\r")
	return fields
}
