package terrain

// Generator produces the next element of an unbounded stream
type Generator[T any] interface {
	Next() T
}

// GeneratorFunc adapts a closure to Generator
type GeneratorFunc[T any] func() T

func (f GeneratorFunc[T]) Next() T { return f() }

// Sequence is an append-only memoised view over a Generator
// Index n is produced exactly once; later reads return the cached element
// Storage grows with the highest index ever read and is never evicted
type Sequence[T any] struct {
	gen   Generator[T]
	items []T
}

func NewSequence[T any](gen Generator[T]) *Sequence[T] {
	return &Sequence[T]{gen: gen}
}

// At returns element n, advancing the generator until it exists
// Panics on negative n like a slice index
func (s *Sequence[T]) At(n int) T {
	if n < 0 {
		panic("terrain: negative sequence index")
	}
	for len(s.items) <= n {
		s.items = append(s.items, s.gen.Next())
	}
	return s.items[n]
}

// Len returns the number of materialised elements
func (s *Sequence[T]) Len() int {
	return len(s.items)
}
