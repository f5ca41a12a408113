package rope

import (
	"encoding/json"
	"io"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/ropelib/rope/internal/core"
)

// Node is a node in the immutable rope tree: a literal, a concatenation, or
// a repetition.
type Node = core.Node

// Rope is an immutable sequence of bytes backed by a tree of small nodes.
// The zero value is the empty rope. Every operation that "modifies" a rope
// returns a new one; the receiver and anything sharing its sub-trees are
// untouched, which makes ropes safe for concurrent readers without locks.
type Rope struct {
	root core.Node
}

// defaultBuilder is the singleton builder used for package-level functions.
// It uses the depth-triggered Fibonacci balancing strategy.
var defaultBuilder = NewBuilder()

// New creates a rope from a string. The bytes are copied.
func New(s string) Rope {
	return FromBytes([]byte(s))
}

// FromBytes creates a rope owning a copy of b.
func FromBytes(b []byte) Rope {
	return Rope{root: core.NewLiteral(b)}
}

// Empty returns the empty rope.
func Empty() Rope {
	return Rope{}
}

// node guards the zero value: a Rope that was never constructed behaves as
// the empty rope everywhere.
func (r Rope) node() core.Node {
	if r.root == nil {
		return core.EmptyLiteral()
	}
	return r.root
}

// Root exposes the underlying node, for callers composing with the Builder.
func (r Rope) Root() Node {
	return r.node()
}

// Len returns the length in bytes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// Depth returns the longest node-to-leaf path of the backing tree.
func (r Rope) Depth() int {
	return r.node().Depth()
}

// Concat returns the rope denoting r's bytes followed by other's. Cost is
// O(1) plus an occasional rebalance once the tree grows deep.
func (r Rope) Concat(other Rope) Rope {
	return Rope{root: core.Join(r.node(), other.node())}
}

// Join concatenates two ropes with the default strategy.
func Join(a, b Rope) Rope {
	return a.Concat(b)
}

// Repeat returns r's bytes repeated n times. n <= 0 yields the empty rope;
// the result is a single compact node regardless of n.
func (r Rope) Repeat(n int) Rope {
	return Rope{root: core.NewRepeat(r.node(), n)}
}

// Contains reports whether needle occurs contiguously in r.
func (r Rope) Contains(needle Rope) bool {
	return core.Contains(r.node(), needle.node())
}

// Compare orders r and other lexicographically, returning -1, 0 or 1.
func (r Rope) Compare(other Rope) int {
	return core.Compare(r.node(), other.node())
}

// Equal reports whether r and other denote the same bytes.
func (r Rope) Equal(other Rope) bool {
	return core.Equal(r.node(), other.node())
}

// Hash returns a stable content hash: equal bytes hash equally no matter how
// the rope was built. The value is memoized on the root node.
func (r Rope) Hash() int64 {
	return core.HashValue(r.node())
}

// Bytes materializes the rope into a fresh flat buffer.
func (r Rope) Bytes() []byte {
	return core.Materialize(r.node())
}

// String materializes the rope into a string.
func (r Rope) String() string {
	return string(r.Bytes())
}

// Repr returns a printable construction of the rope, Rope("...").
func (r Rope) Repr() string {
	return "Rope(" + strconv.Quote(r.String()) + ")"
}

// Balance rewrites the backing tree to logarithmic depth. Content is
// unchanged; only traversal cost improves. Concat already balances on
// demand, so this is mainly useful after building a rope through the raw
// Builder strategies.
func (r Rope) Balance() Rope {
	return Rope{root: core.Rebalance(r.node())}
}

// WriteTo streams the rope's bytes to w without materializing the whole
// rope. It implements io.WriterTo.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	return core.WriteTo(r.node(), w)
}

// MarshalJSON encodes the rope's content as a JSON string.
// Warning: materializes the full content.
func (r Rope) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a JSON string, replacing the rope's content.
func (r *Rope) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = New(s)
	return nil
}

// Handle provides a thread-safe mutable cell holding a Rope.
// It allows for lock-free reads (snapshots) and serialized writes.
type Handle struct {
	// value holds the *container
	value atomic.Value
	mu    sync.Mutex
}

// container is a helper to store the rope in atomic.Value
type container struct {
	root Rope
}

// NewHandle creates a new thread-safe handle holding initial.
func NewHandle(initial Rope) *Handle {
	h := &Handle{}
	h.value.Store(&container{root: initial})
	return h
}

// Root returns the current snapshot. O(1), wait-free, thread-safe.
func (h *Handle) Root() Rope {
	return h.value.Load().(*container).root
}

// Snapshot is an alias for Root, emphasizing that the returned rope is a
// point-in-time view that will not change when the handle is updated.
func (h *Handle) Snapshot() Rope {
	return h.Root()
}

// Set replaces the handle's rope.
func (h *Handle) Set(r Rope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value.Store(&container{root: r})
}

// Apply atomically applies a modification function to the rope. Writes are
// serialized with a mutex so the read-modify-write cycle cannot interleave.
func (h *Handle) Apply(fn func(Rope) Rope) Rope {
	h.mu.Lock()
	defer h.mu.Unlock()

	current := h.value.Load().(*container).root
	newRoot := fn(current)
	h.value.Store(&container{root: newRoot})
	return newRoot
}

// MarshalJSON encodes the current snapshot's content as a JSON string.
func (h *Handle) MarshalJSON() ([]byte, error) {
	return h.Snapshot().MarshalJSON()
}

// UnmarshalJSON decodes a JSON string into the handle, replacing its content.
func (h *Handle) UnmarshalJSON(data []byte) error {
	var r Rope
	if err := r.UnmarshalJSON(data); err != nil {
		return err
	}
	h.Set(r)
	return nil
}

// ParForEach feeds the rope's contiguous chunks to fn from a pool of worker
// goroutines. A repeat delivers its expanded child once per repetition.
// Execution is concurrent, so chunk order is NOT guaranteed; fn must not
// retain or modify the slice.
func ParForEach(r Rope, workers int, fn func(chunk []byte)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan []byte, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				fn(b)
			}
		}()
	}

	core.EachLeaf(r.node(), func(chunk []byte) {
		jobs <- chunk
	})
	close(jobs)

	wg.Wait()
}
