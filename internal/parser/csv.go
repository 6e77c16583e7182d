package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

func decodeCSV(data []byte, opt Options) (*table.Table, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(data)
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DecodeError{Format: FormatCSV, Err: errors.New("empty input")}
		}
		return nil, &DecodeError{Format: FormatCSV, Err: fmt.Errorf("read header: %w", err)}
	}

	var records [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &DecodeError{Format: FormatCSV, Err: fmt.Errorf("read row %d: %w", len(records)+1, err)}
		}
		row := make([]string, len(rec))
		copy(row, rec)
		if len(row) > len(header) {
			row = row[:len(header)]
		}
		records = append(records, row)
	}

	t, err := table.New(header, records)
	if err != nil {
		return nil, &DecodeError{Format: FormatCSV, Err: err}
	}
	return t, nil
}

// sniffDelimiter inspects the first line and picks the candidate separator
// that occurs most often.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best := ','
	bestCount := bytes.Count(line, []byte{','})
	for _, cand := range []byte{';', '\t'} {
		if n := bytes.Count(line, []byte{cand}); n > bestCount {
			best = rune(cand)
			bestCount = n
		}
	}
	return best
}
