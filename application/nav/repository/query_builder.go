package repository

import (
	"fmt"
	"strings"

	"fundnav/application/nav/domain"
	"fundnav/common"
)

// BuildSelectQuery builds the filtered SELECT statement with parameters.
// Each present filter field appends one conjunctive predicate; values are
// always bound via placeholders, never interpolated.
func BuildSelectQuery(filter domain.QueryFilter) (string, []interface{}) {
	var query strings.Builder
	var args []interface{}

	query.WriteString("SELECT * FROM ")
	query.WriteString(quoteIdentifier(common.NAVTable))

	var whereParts []string

	if filter.HasCodes() {
		placeholders := make([]string, len(filter.Codes))
		for i, code := range filter.Codes {
			placeholders[i] = "?"
			args = append(args, code)
		}
		whereParts = append(whereParts, fmt.Sprintf("%s IN (%s)",
			quoteIdentifier(common.FundCodeColumn), strings.Join(placeholders, ", ")))
	}

	if filter.StartDate.Valid {
		whereParts = append(whereParts, quoteIdentifier(common.NAVDateColumn)+" >= ?")
		args = append(args, filter.StartDate.Time)
	}

	if filter.EndDate.Valid {
		whereParts = append(whereParts, quoteIdentifier(common.NAVDateColumn)+" <= ?")
		args = append(args, filter.EndDate.Time)
	}

	if len(whereParts) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(whereParts, " AND "))
	}

	return query.String(), args
}

// BuildCodesQuery builds the distinct fund code listing.
func BuildCodesQuery() string {
	col := quoteIdentifier(common.FundCodeColumn)
	return fmt.Sprintf("SELECT DISTINCT %s FROM %s ORDER BY %s",
		col, quoteIdentifier(common.NAVTable), col)
}

// BuildDateRangeQuery builds the min/max date aggregate.
func BuildDateRangeQuery() string {
	col := quoteIdentifier(common.NAVDateColumn)
	return fmt.Sprintf("SELECT MIN(%s), MAX(%s) FROM %s",
		col, col, quoteIdentifier(common.NAVTable))
}

// BuildProbeQuery builds the bounded row-count query used by the connection
// probe.
func BuildProbeQuery() string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s LIMIT 1", quoteIdentifier(common.NAVTable))
}

// quoteIdentifier safely quotes a SQL identifier.
func quoteIdentifier(identifier string) string {
	cleaned := strings.ReplaceAll(identifier, "`", "")
	return fmt.Sprintf("`%s`", cleaned)
}
