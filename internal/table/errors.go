package table

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError reports a column name absent from a table, together
// with the columns that do exist so the caller can present alternatives.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found", e.Column)
	}
	return fmt.Sprintf("column %q not found; available: %s", e.Column, strings.Join(e.Available, ", "))
}
