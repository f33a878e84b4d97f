package validate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Equal reports whether two result sets hold the same rows regardless of row
// order and of column order within each row.
//
// Rows are reduced to canonical strings (column names sorted, name:value
// pairs joined with "|") and compared as sets. Two documented limitations are
// kept for wire compatibility: values compare by their text form only, so 1
// and "1" canonicalize identically, and duplicate rows compare by set
// membership rather than count.
func Equal(a, b ResultSet) bool {
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	setA := canonicalSet(a)
	setB := canonicalSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for item := range setA {
		if _, ok := setB[item]; !ok {
			return false
		}
	}
	return true
}

func canonicalSet(rows ResultSet) map[string]struct{} {
	set := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		set[canonicalRow(row)] = struct{}{}
	}
	return set
}

// canonicalRow encodes a row independently of column order.
func canonicalRow(row Row) string {
	names := make([]string, 0, len(row))
	for name := range row {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for idx, name := range names {
		if idx > 0 {
			builder.WriteByte('|')
		}
		builder.WriteString(name)
		builder.WriteByte(':')
		builder.WriteString(valueString(row[name]))
	}
	return builder.String()
}

// valueString renders a scalar in its natural text form. NULL renders as
// "null".
func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
