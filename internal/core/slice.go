package core

// Slice returns a node denoting the bytes of n in [start, stop). stop is
// clamped to n.Len(); an empty range yields the empty literal and the full
// range yields n itself. Whole sub-trees are reused wherever a cut falls on a
// concat boundary, and a repeat is never materialized: its slice decomposes
// into at most a head slice of the child, a smaller repeat, and a tail slice.
func Slice(n Node, start, stop int) Node {
	for {
		if stop > n.Len() {
			stop = n.Len()
		}
		if start < 0 {
			start = 0
		}
		if start >= stop {
			return empty
		}
		if start == 0 && stop == n.Len() {
			return n
		}

		switch v := n.(type) {
		case *Literal:
			return NewLiteral(v.buf[start:stop])

		case *Concat:
			l := v.Left.Len()
			if stop <= l {
				n = v.Left
				continue
			}
			if start >= l {
				n, start, stop = v.Right, start-l, stop-l
				continue
			}
			return Join(sliceRight(v.Left, start), sliceLeft(v.Right, stop-l))

		case *Repeat:
			return sliceRepeat(v, start, stop)
		}
	}
}

// sliceRepeat cuts [start, stop) out of a repeat without expanding it.
func sliceRepeat(r *Repeat, start, stop int) Node {
	base := r.Child.Len()
	off := start % base

	// The whole range inside a single repetition of the child.
	if off+(stop-start) <= base {
		return Slice(r.Child, off, off+(stop-start))
	}

	adjStart := start + (base-off)%base // round up to a child boundary
	adjStop := stop - stop%base         // round down
	whole := (adjStop - adjStart) / base

	var res Node
	if off != 0 {
		res = Slice(r.Child, off, base)
	}
	if whole > 0 {
		mid := NewRepeat(r.Child, whole)
		if res == nil {
			res = mid
		} else {
			res = Join(res, mid)
		}
	}
	if end := stop % base; end != 0 {
		tail := Slice(r.Child, 0, end)
		if res == nil {
			res = tail
		} else {
			res = Join(res, tail)
		}
	}
	return res
}

// sliceRight returns the suffix of n starting at start. The concat spine is
// walked iteratively; sub-trees to the right of the cut are reused whole and
// only the node the cut lands in is re-sliced.
func sliceRight(n Node, start int) Node {
	for {
		if start == 0 {
			return n
		}
		c, ok := n.(*Concat)
		if !ok {
			return Slice(n, start, n.Len())
		}
		l := c.Left.Len()
		if start >= l {
			n, start = c.Right, start-l
			continue
		}
		return Join(sliceRight(c.Left, start), c.Right)
	}
}

// sliceLeft returns the prefix of n ending at stop, mirroring sliceRight.
func sliceLeft(n Node, stop int) Node {
	for {
		if stop == n.Len() {
			return n
		}
		c, ok := n.(*Concat)
		if !ok {
			return Slice(n, 0, stop)
		}
		l := c.Left.Len()
		if stop <= l {
			n = c.Left
			continue
		}
		return Join(c.Left, sliceLeft(c.Right, stop-l))
	}
}
