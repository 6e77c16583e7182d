package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

func decodeXLSX(data []byte, opt Options) (*table.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: FormatXLSX, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	sheet, err := resolveSheet(f, opt)
	if err != nil {
		return nil, &DecodeError{Format: FormatXLSX, Err: err}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &DecodeError{Format: FormatXLSX, Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return nil, &DecodeError{Format: FormatXLSX, Err: fmt.Errorf("sheet %q is empty", sheet)}
	}
	header := rows[0]
	records := rows[1:]
	for i, rec := range records {
		if len(rec) > len(header) {
			records[i] = rec[:len(header)]
		}
	}
	t, err := table.New(header, records)
	if err != nil {
		return nil, &DecodeError{Format: FormatXLSX, Err: err}
	}
	return t, nil
}

func resolveSheet(f *excelize.File, opt Options) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if opt.SheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, opt.SheetName) {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet %q not found; available sheets: %s", opt.SheetName, strings.Join(sheets, ", "))
	}
	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx > len(sheets) {
		return "", fmt.Errorf("sheet index %d out of range; workbook has %d sheets", idx, len(sheets))
	}
	return sheets[idx-1], nil
}
