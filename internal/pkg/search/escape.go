// Package search holds helpers for building SQL search predicates.
package search

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeILIKE escapes LIKE metacharacters in a user-supplied term so it
// matches literally inside an ILIKE pattern. The backslash is PostgreSQL's
// default escape character, so no ESCAPE clause is needed.
func EscapeILIKE(term string) string {
	return likeEscaper.Replace(term)
}
