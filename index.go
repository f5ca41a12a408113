package rope

import (
	"fmt"

	"github.com/ropelib/rope/internal/core"
)

// At returns the byte at offset i. Negative indices count from the end, as
// in r.At(-1) for the last byte. Cost is O(depth).
func (r Rope) At(i int) (byte, error) {
	n := r.node()
	idx := i
	if idx < 0 {
		idx += n.Len()
	}
	if idx < 0 || idx >= n.Len() {
		return 0, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, n.Len())
	}
	return core.ByteAt(n, idx), nil
}

// Index returns the single-byte rope at offset i, with the same index rules
// as At.
func (r Rope) Index(i int) (Rope, error) {
	b, err := r.At(i)
	if err != nil {
		return Rope{}, err
	}
	return FromBytes([]byte{b}), nil
}

// Slice returns the sub-range [start, stop). Offsets follow slice-expression
// conventions: negative values count from the end, out-of-range values clamp,
// and an inverted range yields the empty rope. Whole sub-trees are shared
// with r wherever possible, so the result costs O(depth) plus at most one
// literal copy per cut.
func (r Rope) Slice(start, stop int) Rope {
	n := r.node()
	l := n.Len()
	if start < 0 {
		start += l
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += l
	}
	if stop > l {
		stop = l
	}
	if start >= stop {
		return Empty()
	}
	return Rope{root: core.Slice(n, start, stop)}
}

// SliceStep is Slice with an explicit step. Only step 1 is supported: a zero
// step returns ErrZeroStep and any other step reports ErrNotImplemented.
func (r Rope) SliceStep(start, stop, step int) (Rope, error) {
	switch step {
	case 1:
		return r.Slice(start, stop), nil
	case 0:
		return Rope{}, fmt.Errorf("%w: step %d", ErrZeroStep, step)
	default:
		return Rope{}, fmt.Errorf("%w: step %d", ErrNotImplemented, step)
	}
}
