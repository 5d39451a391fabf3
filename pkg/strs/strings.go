package strs

import (
	"unicode"
	"unicode/utf8"
)

// Unique returns the strings in the order they first appear, with any later
// duplicates removed.
func Unique(strs []string) (unique []string) {
	strSet := map[string]struct{}{}
	for _, str := range strs {
		if _, ok := strSet[str]; ok {
			continue
		}
		strSet[str] = struct{}{}
		unique = append(unique, str)
	}
	return unique
}

// LowerFirst lower-cases the first rune of str.
func LowerFirst(str string) string {
	r, size := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError {
		return str
	}
	return string(unicode.ToLower(r)) + str[size:]
}
