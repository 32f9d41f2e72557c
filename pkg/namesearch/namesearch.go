// Package namesearch builds the SQL filter used for free-text guest name
// lookups: a case-insensitive substring match against the "first last"
// concatenation or against the last name alone.
package namesearch

import "strings"

// SQLFilter returns a WHERE fragment and its arguments for the given query.
// The query is trimmed by the caller; this only assembles the pattern.
func SQLFilter(firstColumn, lastColumn, query string) (string, []interface{}) {
	pattern := "%" + escapeLike(query) + "%"
	fragment := "(" + firstColumn + " || ' ' || " + lastColumn + ") ILIKE ? OR " + lastColumn + " ILIKE ?"
	return fragment, []interface{}{pattern, pattern}
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
