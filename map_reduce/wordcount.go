package map_reduce

import (
	"strings"
)

// punctuation is the ASCII punctuation set stripped from every line.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var stripPunctuation = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, 2*len(punctuation))
	for _, c := range punctuation {
		pairs = append(pairs, string(c), "")
	}
	return pairs
}

type WordCountMapper struct{}

// Map lowercases each line, drops punctuation and the newline, then splits
// on whitespace. Punctuation is removed before splitting, so "word," maps to
// "word" and "don't" to "dont".
func (m *WordCountMapper) Map(records []Record) ([]Pair, error) {
	var pairs []Pair
	for _, rec := range records {
		line := strings.ToLower(rec.Line)
		line = stripPunctuation.Replace(line)
		line = strings.ReplaceAll(line, "\n", "")

		for _, word := range strings.Fields(line) {
			pairs = append(pairs, Pair{Word: word, Count: 1})
		}
	}
	return pairs, nil
}

type WordCountReducer struct{}

// Reduce merges runs of equal words by summing their counts. Only adjacent
// pairs are merged: unsorted input yields the same word more than once.
func (r *WordCountReducer) Reduce(pairs []Pair) ([]Pair, error) {
	var (
		result []Pair
		acc    Pair
		open   bool
	)
	for _, p := range pairs {
		if open && p.Word == acc.Word {
			acc.Count += p.Count
			continue
		}
		if open {
			result = append(result, acc)
		}
		acc, open = p, true
	}
	if open {
		result = append(result, acc)
	}
	return result, nil
}
