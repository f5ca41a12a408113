package rope

import (
	"fmt"

	"github.com/ropelib/rope/internal/core"
)

// Balancer defines a strategy for combining two rope nodes into a single
// Node. Implementations control the structure of the resulting tree, enabling
// different balancing characteristics (depth-triggered Fibonacci rebuild for
// append-heavy workloads, AVL rotations for steady interleaved edits).
type Balancer = core.Balancer

// NewFibonacciBalancer returns the default strategy: constant-time concat
// with a full Fibonacci-slot rebuild once the tree grows deep.
func NewFibonacciBalancer() Balancer {
	return core.NewFibonacciBalancer()
}

// NewAVLBalancer returns the rotation-based strategy.
func NewAVLBalancer() Balancer {
	return core.NewAVLBalancer()
}

// Builder constructs and edits ropes with a specific configuration, such as a
// custom balancing strategy.
type Builder struct {
	balancer Balancer
}

// BuilderOption is a function that configures a Builder.
type BuilderOption func(*Builder)

// WithBalancer sets the balancing strategy for the Builder.
func WithBalancer(b Balancer) BuilderOption {
	return func(builder *Builder) {
		builder.balancer = b
	}
}

// NewBuilder creates a new Builder with the given options. By default it
// uses the Fibonacci balancing strategy.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		balancer: core.NewFibonacciBalancer(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Join combines two ropes using the configured balancing strategy.
func (b *Builder) Join(left, right Rope) Rope {
	return Rope{root: b.balancer.Join(left.node(), right.node())}
}

// Split cuts r at index i, returning the two halves. i follows Slice's offset
// rules: a negative i counts from the end, and out-of-range values clamp.
func Split(r Rope, i int) (Rope, Rope) {
	return r.Slice(0, i), r.Slice(i, r.Len())
}

// Insert places text into r at byte offset i and returns the new rope; r is
// unmodified. The offset must lie in [0, r.Len()].
func (b *Builder) Insert(r Rope, i int, text string) (Rope, error) {
	if i < 0 || i > r.Len() {
		return Rope{}, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, r.Len())
	}

	inserted := New(text)
	if i == 0 {
		return b.Join(inserted, r), nil
	}
	if i == r.Len() {
		return b.Join(r, inserted), nil
	}

	left, right := Split(r, i)
	return b.Join(b.Join(left, inserted), right), nil
}

// Delete removes the bytes in [start, end) and returns the new rope; r is
// unmodified.
func (b *Builder) Delete(r Rope, start, end int) (Rope, error) {
	if start < 0 || end > r.Len() || start > end {
		return Rope{}, fmt.Errorf("%w: [%d, %d) with length %d", ErrIndexOutOfRange, start, end, r.Len())
	}

	left, _ := Split(r, start)
	_, right := Split(r, end)
	return b.Join(left, right), nil
}

// Insert inserts text into r at offset i using the default strategy.
func Insert(r Rope, i int, text string) (Rope, error) {
	return defaultBuilder.Insert(r, i, text)
}

// Delete removes [start, end) from r using the default strategy.
func Delete(r Rope, start, end int) (Rope, error) {
	return defaultBuilder.Delete(r, start, end)
}
