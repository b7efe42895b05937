package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/guregu/null/v5"

	"fundnav/application/nav/domain"
)

// ScanRow scans a single row into a Row map using the reflected column set.
func ScanRow(rows *sql.Rows, columns []string) (domain.Row, error) {
	values := make([]interface{}, len(columns))
	valuePtrs := make([]interface{}, len(columns))

	for i := range values {
		valuePtrs[i] = &values[i]
	}

	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	result := make(domain.Row, len(columns))
	for i, colName := range columns {
		result[colName] = values[i]
	}

	return result, nil
}

// dateLayouts covers the textual forms drivers hand back for date values.
// Aggregates like MIN/MAX lose the column decltype on some drivers, so the
// value may arrive as text even when the column itself scans as time.Time.
var dateLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToNullTime converts a scanned database value to a nullable time.
func ToNullTime(val interface{}) null.Time {
	switch v := val.(type) {
	case nil:
		return null.Time{}
	case time.Time:
		return null.TimeFrom(v)
	case *time.Time:
		if v == nil {
			return null.Time{}
		}
		return null.TimeFrom(*v)
	case []byte:
		return parseTime(string(v))
	case string:
		return parseTime(v)
	default:
		return null.Time{}
	}
}

func parseTime(s string) null.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return null.TimeFrom(t)
		}
	}
	return null.Time{}
}
