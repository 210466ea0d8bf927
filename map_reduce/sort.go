package map_reduce

import "sort"

// SortPairs orders pairs by word using byte comparison. Stands in for the
// shuffle: equal words end up adjacent, which Reduce relies on.
func SortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Word < pairs[j].Word
	})
}
