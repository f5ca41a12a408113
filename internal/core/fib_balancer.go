package core

// The slot construction: slot k is reserved for nodes whose length lies in
// [F(k), F(k+1)) with F(0)=1, F(1)=2. Folding every incoming leaf into the
// occupied slots it covers keeps the finished tree's depth bounded by the
// slot count, which is log_phi of the total length.

// fibSlot returns the slot index covering length, which must be >= 1.
func fibSlot(length int) int {
	a, b, k := 1, 2, 0
	for {
		if a <= length && length < b {
			return k
		}
		a, b = b, a+b
		k++
		if b < a {
			// Fibonacci overflow; every representable length is covered.
			return k
		}
	}
}

// FibonacciBalancer is the default strategy: cheap concat, full slot
// rebalance once the tree grows past RebalanceDepth.
type FibonacciBalancer struct{}

func NewFibonacciBalancer() *FibonacciBalancer {
	return &FibonacciBalancer{}
}

func (b *FibonacciBalancer) Join(left, right Node) Node {
	return Join(left, right)
}

// Rebalance rewrites the tree under root into one of logarithmic depth.
// Non-Concat nodes are the units of the rewrite: literals and repeats are
// kept whole, so a compact Repeat survives rebalancing.
func Rebalance(root Node) Node {
	if _, ok := root.(*Concat); !ok {
		return root
	}
	leaves := flatten(root)
	if len(leaves) == 0 {
		return empty
	}

	// Fuse runs of small adjacent literals before slotting.
	merged := make([]Node, 0, len(leaves))
	for _, leaf := range leaves {
		if len(merged) > 0 {
			if m, ok := TryMergeLiterals(merged[len(merged)-1], leaf); ok {
				merged[len(merged)-1] = m
				continue
			}
		}
		merged = append(merged, leaf)
	}
	if len(merged) == 1 {
		return merged[0]
	}

	slots := make([]Node, fibSlot(root.Len())+1)
	for _, c := range merged {
		slotInsert(slots, c)
	}

	// Collapse low to high; higher slots hold earlier content and go on the
	// left of the accumulator.
	var res Node
	for _, s := range slots {
		if s == nil {
			continue
		}
		if res == nil {
			res = s
		} else {
			res = NewConcat(s, res)
		}
	}
	return res
}

// slotInsert folds c into the slot array. Occupied slots at or below c's slot
// hold content that precedes c in document order, lower slots most recent, so
// they concatenate onto c's left from the nearest outward. Folding grows c,
// which may bring further occupied slots into range; the scan repeats until
// c's slot is clear.
func slotInsert(slots []Node, c Node) {
	for {
		k := fibSlot(c.Len())
		if k >= len(slots) {
			k = len(slots) - 1
		}
		folded := false
		for i := 0; i <= k; i++ {
			if slots[i] != nil {
				c = NewConcat(slots[i], c)
				slots[i] = nil
				folded = true
			}
		}
		if !folded {
			slots[k] = c
			return
		}
	}
}
