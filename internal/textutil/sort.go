package textutil

import "github.com/tidwall/btree"

// wordEntry pairs a word with its scan position. The position breaks ties
// between equal sort keys, so duplicates and same-length words keep their
// source order.
type wordEntry struct {
	word string
	seq  int
}

// SortWords returns the words ordered ascending by value, or by length when
// byLength is set.
func SortWords(words []string, byLength bool) []string {
	if byLength {
		return collect(words, lessLengthAsc)
	}

	return collect(words, lessValueAsc)
}

// SortWordsReverse returns the words ordered descending by value, or by
// length when byLength is set.
func SortWordsReverse(words []string, byLength bool) []string {
	if byLength {
		return collect(words, lessLengthDesc)
	}

	return collect(words, lessValueDesc)
}

func collect(words []string, less func(a, b wordEntry) bool) []string {
	tree := btree.NewBTreeG(less)
	for i, w := range words {
		tree.Set(wordEntry{word: w, seq: i})
	}

	sorted := make([]string, 0, len(words))
	tree.Scan(func(e wordEntry) bool {
		sorted = append(sorted, e.word)
		return true
	})

	return sorted
}

func lessValueAsc(a, b wordEntry) bool {
	if a.word != b.word {
		return a.word < b.word
	}

	return a.seq < b.seq
}

func lessValueDesc(a, b wordEntry) bool {
	if a.word != b.word {
		return a.word > b.word
	}

	return a.seq < b.seq
}

func lessLengthAsc(a, b wordEntry) bool {
	if len(a.word) != len(b.word) {
		return len(a.word) < len(b.word)
	}

	return a.seq < b.seq
}

func lessLengthDesc(a, b wordEntry) bool {
	if len(a.word) != len(b.word) {
		return len(a.word) > len(b.word)
	}

	return a.seq < b.seq
}
