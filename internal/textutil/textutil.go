// Package textutil provides the word scanning and comparison helpers
// shared by the reporting commands.
package textutil

import (
	"regexp"
	"slices"
)

var (
	wordPattern   = regexp.MustCompile(`\S+`)
	numberPattern = regexp.MustCompile(`(^|\s)[0-9]+\b`)
)

// Words returns every maximal run of non-whitespace characters in s, in
// order of appearance.
func Words(s string) []string {
	return wordPattern.FindAllString(s, -1)
}

// CountWords reports how many words s contains without materializing them.
func CountWords(s string) int {
	return len(wordPattern.FindAllStringIndex(s, -1))
}

// CountNumbers reports how many standalone numeric tokens s contains: digit
// runs that start the text or follow whitespace and are not glued to a
// trailing word character.
func CountNumbers(s string) int {
	return len(numberPattern.FindAllStringIndex(s, -1))
}

// AreAnagrams reports whether the two words consist of exactly the same
// bytes, in any order.
func AreAnagrams(first, second string) bool {
	if len(first) != len(second) {
		return false
	}

	a := []byte(first)
	b := []byte(second)
	slices.Sort(a)
	slices.Sort(b)

	return string(a) == string(b)
}

// ArePalindromes reports whether second reads as first when reversed.
func ArePalindromes(first, second string) bool {
	if len(first) != len(second) {
		return false
	}

	for i := 0; i < len(first); i++ {
		if first[i] != second[len(second)-1-i] {
			return false
		}
	}

	return true
}

// DistinctMatches returns the words matching at least one reference word,
// deduplicated, in first-occurrence order.
func DistinctMatches(words, reference []string, match func(word, ref string) bool) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{})

	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}

		for _, ref := range reference {
			if match(w, ref) {
				found = append(found, w)
				seen[w] = struct{}{}
				break
			}
		}
	}

	return found
}
