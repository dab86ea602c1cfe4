package rbst

import "github.com/ajwerner/rbst/abstract"

// Option configures a Set at construction.
type Option[K any] func(*options[K])

type options[K any] struct {
	src   abstract.Source
	alloc abstract.Allocator[K]
}

// WithSource supplies the random source consumed by structural
// decisions. The default is a linear congruential generator seeded
// with abstract.DefaultSeed, so two sets built with the same inputs
// and no WithSource see identical shapes.
func WithSource[K any](src abstract.Source) Option[K] {
	return func(o *options[K]) { o.src = src }
}

// WithSeed is shorthand for WithSource over the default generator
// with the given seed.
func WithSeed[K any](seed uint32) Option[K] {
	return WithSource[K](abstract.NewLCG(seed))
}

// WithAllocator supplies the node allocator. The default recycles
// nodes through a process-wide pool shared by all sets of the same
// key type.
func WithAllocator[K any](alloc abstract.Allocator[K]) Option[K] {
	return func(o *options[K]) { o.alloc = alloc }
}
