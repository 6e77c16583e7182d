package plot

import (
	"time"

	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

// dateLayouts are the accepted formats, in priority order. The first layout
// that parses every non-null cell is adopted for the whole column; mixed
// formats within one column are a failure, since a per-cell fallback would
// silently misread ambiguous day/month values.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02-01-2006",
}

// parseDateColumn parses col under a single adopted layout. The returned
// slice has the table's row count; ok[i] is false for null cells.
func parseDateColumn(col *table.Column) (times []time.Time, ok []bool, err error) {
	bestFail := ""
	bestParsed := -1
	for _, layout := range dateLayouts {
		times = make([]time.Time, col.Len())
		ok = make([]bool, col.Len())
		parsed := 0
		failed := ""
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				continue
			}
			t, perr := time.Parse(layout, col.Raw(i))
			if perr != nil {
				failed = col.Raw(i)
				break
			}
			times[i] = t
			ok[i] = true
			parsed++
		}
		if failed == "" {
			return times, ok, nil
		}
		if parsed > bestParsed {
			bestParsed = parsed
			bestFail = failed
		}
	}
	return nil, nil, &DateParseError{Column: col.Name, Value: bestFail}
}
