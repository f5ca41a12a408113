package core

import "sync/atomic"

// hashUnset marks a node whose content hash has not been computed yet.
// A computed hash is never -1: the hasher remaps -1 to -2.
const hashUnset = -1

// Node is a node in the immutable rope. A node is one of exactly three
// variants: *Literal, *Concat or *Repeat. Operations over nodes type-switch
// on the variant; the interface itself carries only the cached structural
// facts every variant maintains.
type Node interface {
	// Len is the length in bytes of the sequence the sub-tree denotes.
	Len() int
	// Depth is the longest path from this node to a leaf. Leaves have depth 1.
	Depth() int

	// cachedHash gives hash computation access to the per-node memo.
	cachedHash() *atomic.Int64
}

// --------------------------------------------------------
// Literal
// --------------------------------------------------------

// Literal is a leaf owning a contiguous byte buffer. The buffer is never
// shared with another Literal; sharing happens at the node level only.
type Literal struct {
	buf  []byte
	hash atomic.Int64
}

// empty is the shared zero-length literal. Sub-trees are shared freely, so a
// single node can serve every empty result.
var empty = func() *Literal {
	l := &Literal{}
	l.hash.Store(hashUnset)
	return l
}()

// EmptyLiteral returns the canonical zero-length node.
func EmptyLiteral() *Literal {
	return empty
}

// NewLiteral creates a leaf owning a copy of b.
func NewLiteral(b []byte) *Literal {
	if len(b) == 0 {
		return empty
	}
	l := &Literal{buf: append([]byte(nil), b...)}
	l.hash.Store(hashUnset)
	return l
}

// newLiteralOwned wraps a buffer the caller hands over. The caller must not
// retain b.
func newLiteralOwned(b []byte) *Literal {
	if len(b) == 0 {
		return empty
	}
	l := &Literal{buf: b}
	l.hash.Store(hashUnset)
	return l
}

func (l *Literal) Len() int   { return len(l.buf) }
func (l *Literal) Depth() int { return 1 }

func (l *Literal) cachedHash() *atomic.Int64 { return &l.hash }

// --------------------------------------------------------
// Concat
// --------------------------------------------------------

// Concat references two children; its sequence is left's bytes followed by
// right's.
type Concat struct {
	Left, Right Node
	length      int
	depth       int
	hash        atomic.Int64
}

// NewConcat builds a raw concat node. It does not balance and does not
// special-case empty children; use Join for the checked constructor.
func NewConcat(left, right Node) *Concat {
	c := &Concat{
		Left:   left,
		Right:  right,
		length: left.Len() + right.Len(),
		depth:  1 + max(left.Depth(), right.Depth()),
	}
	c.hash.Store(hashUnset)
	return c
}

func (c *Concat) Len() int   { return c.length }
func (c *Concat) Depth() int { return c.depth }

func (c *Concat) cachedHash() *atomic.Int64 { return &c.hash }

// --------------------------------------------------------
// Repeat
// --------------------------------------------------------

// Repeat references one child repeated Count times. Count is always >= 2;
// NewRepeat normalizes smaller counts away.
type Repeat struct {
	Child  Node
	Count  int
	length int
	hash   atomic.Int64
}

// NewRepeat builds a repetition of child. Counts below 2 never produce a
// Repeat node: zero or negative counts and an empty child yield the empty
// literal, a count of one yields the child itself.
func NewRepeat(child Node, count int) Node {
	if count <= 0 || child.Len() == 0 {
		return empty
	}
	if count == 1 {
		return child
	}
	r := &Repeat{
		Child:  child,
		Count:  count,
		length: child.Len() * count,
	}
	r.hash.Store(hashUnset)
	return r
}

func (r *Repeat) Len() int { return r.length }

// Depth of a repeat is its child's depth: materialization cost repeats, the
// traversal path does not.
func (r *Repeat) Depth() int { return r.Child.Depth() }

func (r *Repeat) cachedHash() *atomic.Int64 { return &r.hash }

// --------------------------------------------------------
// Literal merging
// --------------------------------------------------------

// MinLiteralLength is the threshold below which adjacent literals are fused
// during rebalancing. A tuning knob, not a correctness one.
const MinLiteralLength = 128

// TryMergeLiterals fuses two nodes into a single fresh literal if both are
// literals and the result stays under MinLiteralLength. The inputs keep their
// own buffers.
func TryMergeLiterals(left, right Node) (Node, bool) {
	if left.Len()+right.Len() >= MinLiteralLength {
		return nil, false
	}
	lLit, ok1 := left.(*Literal)
	rLit, ok2 := right.(*Literal)
	if !ok1 || !ok2 {
		return nil, false
	}
	merged := make([]byte, 0, len(lLit.buf)+len(rLit.buf))
	merged = append(merged, lLit.buf...)
	merged = append(merged, rLit.buf...)
	return newLiteralOwned(merged), true
}
