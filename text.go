package notebook

import "unicode/utf8"

// Default size limits, in Unicode scalar values.
const (
	DefaultPDFTextLimit   = 15000
	DefaultPageTextLimit  = 8000
	DefaultTotalTextLimit = 40000

	// MinInlineContentLength is the length at which inline document
	// content is trusted and used without fetching anything.
	MinInlineContentLength = 50
)

// Truncate returns at most n Unicode scalar values of s.
// A non-positive n returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// TextLen returns the number of Unicode scalar values in s.
func TextLen(s string) int {
	return utf8.RuneCountInString(s)
}
