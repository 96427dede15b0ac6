// Package pathutil parses identifiers out of URL paths.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID segment of a URL path is missing,
// non-numeric, or not positive.
var ErrInvalidID = errors.New("invalid id")

// ExtractID strips prefix from path and parses the remainder as a positive
// int64.
//
//	id, err := ExtractID("/category/42", "/category/")
func ExtractID(path, prefix string) (int64, error) {
	return parseID(strings.TrimPrefix(path, prefix))
}

// ExtractIDBetween parses the ID segment sitting between a prefix and a
// trailing action segment, e.g. "/newsarticles/42/toggle-status".
func ExtractIDBetween(path, prefix, suffix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	idStr = strings.TrimSuffix(idStr, suffix)
	return parseID(idStr)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
