// Package parser decodes raw CSV or Excel bytes into a typed table.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

// Format is the decoder hint for the input bytes.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Options controls decoding behavior.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects among ',', ';', '\t'.
	Delimiter rune
	// SheetName selects an Excel sheet by name; empty means use SheetIndex.
	SheetName string
	// SheetIndex is the 1-based sheet position (Sheet1 == 1). 0 defaults to 1.
	SheetIndex int
}

// DecodeError wraps a failure to turn input bytes into a table.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses raw bytes according to the format hint.
func Decode(data []byte, format Format, opt Options) (*table.Table, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(data, opt)
	case FormatXLSX:
		return decodeXLSX(data, opt)
	default:
		return nil, &DecodeError{Format: format, Err: fmt.Errorf("unsupported format %q", format)}
	}
}

// DecodeFile reads path and decodes it, picking the format from the file
// extension (.xlsx is Excel, anything else is treated as CSV/TSV).
func DecodeFile(path string, opt Options) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	format := FormatCSV
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		format = FormatXLSX
	}
	if format == FormatCSV && opt.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		opt.Delimiter = '\t'
	}
	return Decode(data, format, opt)
}
