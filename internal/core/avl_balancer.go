package core

// AVLBalancer is an alternative strategy that keeps sibling depths within one
// of each other at every join instead of rewriting the whole tree on a
// trigger. Joins descend the spine nearest the seam, so small literals meet
// at the fringe; every node a rotation builds goes through concatCoalesce,
// which re-fuses literal pairs that rotation has made adjacent. Leaf
// granularity therefore tracks MinLiteralLength as the tree churns, instead
// of decaying into one-byte fringe leaves.
//
// Only *Concat can be descended into or rotated. A *Repeat reports its
// child's depth and is never deeper than its surroundings suggest, so it sits
// on the fringe like a (possibly enormous) leaf.
type AVLBalancer struct{}

// NewAVLBalancer creates a new instance of an AVL balancer.
func NewAVLBalancer() *AVLBalancer {
	return &AVLBalancer{}
}

// concatCoalesce is the constructor rotations build with: a literal pair
// below the merge threshold fuses instead of forming a concat.
func concatCoalesce(l, r Node) Node {
	if m, ok := TryMergeLiterals(l, r); ok {
		return m
	}
	return NewConcat(l, r)
}

// Join combines two nodes, restoring the depth invariant on the way back up.
func (b *AVLBalancer) Join(left, right Node) Node {
	if left.Len() == 0 {
		return right
	}
	if right.Len() == 0 {
		return left
	}
	if merged, ok := TryMergeLiterals(left, right); ok {
		return merged
	}

	dl, dr := left.Depth(), right.Depth()
	switch {
	case dl > dr+1:
		lc, ok := left.(*Concat)
		if !ok {
			// A deep non-concat is a repeat; it cannot be descended into.
			return NewConcat(left, right)
		}
		return b.rebuild(lc.Left, b.Join(lc.Right, right))
	case dr > dl+1:
		rc, ok := right.(*Concat)
		if !ok {
			return NewConcat(left, right)
		}
		return b.rebuild(b.Join(left, rc.Left), rc.Right)
	default:
		return concatCoalesce(left, right)
	}
}

// rebuild joins two sides whose depths may have drifted apart by a spine
// descent, rotating the heavy side's children toward the seam until the
// invariant holds. Each step recurses on strictly shallower trees.
func (b *AVLBalancer) rebuild(l, r Node) Node {
	switch {
	case l.Depth() > r.Depth()+1:
		lc, ok := l.(*Concat)
		if !ok {
			return concatCoalesce(l, r)
		}
		if lc.Right.Depth() > lc.Left.Depth() {
			// The heavy grandchild sits inside; split it across the seam.
			if lrc, ok := lc.Right.(*Concat); ok {
				return concatCoalesce(
					concatCoalesce(lc.Left, lrc.Left),
					b.rebuild(lrc.Right, r),
				)
			}
		}
		return concatCoalesce(lc.Left, b.rebuild(lc.Right, r))

	case r.Depth() > l.Depth()+1:
		rc, ok := r.(*Concat)
		if !ok {
			return concatCoalesce(l, r)
		}
		if rc.Left.Depth() > rc.Right.Depth() {
			if rlc, ok := rc.Left.(*Concat); ok {
				return concatCoalesce(
					b.rebuild(l, rlc.Left),
					concatCoalesce(rlc.Right, rc.Right),
				)
			}
		}
		return concatCoalesce(b.rebuild(l, rc.Left), rc.Right)

	default:
		return concatCoalesce(l, r)
	}
}
