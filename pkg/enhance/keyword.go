package enhance

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// keywordMinLength is the length a token must exceed to count as a keyword.
const keywordMinLength = 4

// ExtractKeywords returns the distinct lowercased whitespace-delimited
// tokens of text that are longer than four characters. There is no
// stemming, no stop-word list, and no punctuation stripping beyond the
// whitespace split; consumers of enhanced databases depend on this exact
// rule, so it must not be refined. The result is sorted for deterministic
// output.
func ExtractKeywords(text string) []string {
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > keywordMinLength {
			seen[strings.ToLower(word)] = struct{}{}
		}
	}

	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}
