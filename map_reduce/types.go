package map_reduce

// Record is a single line read from an input file.
type Record struct {
	Source string
	Line   string
}

// Pair is an intermediate (word, 1) emission or a reduced (word, total).
type Pair struct {
	Word  string
	Count int
}

type Mapper interface {
	Map(records []Record) ([]Pair, error)
}

// Reducer expects its input sorted by word.
type Reducer interface {
	Reduce(pairs []Pair) ([]Pair, error)
}

type MapperFunc func(records []Record) ([]Pair, error)

func (f MapperFunc) Map(records []Record) ([]Pair, error) {
	return f(records)
}

type ReducerFunc func(pairs []Pair) ([]Pair, error)

func (f ReducerFunc) Reduce(pairs []Pair) ([]Pair, error) {
	return f(pairs)
}
