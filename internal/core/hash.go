package core

// hashMultiplier is the rolling-hash multiplier, the same constant CPython
// uses for string hashing.
const hashMultiplier = 1000003

// HashValue computes the content hash of n, memoizing it on the node. The
// scheme: seed with the first byte shifted left 7, fold every byte with
// h = 1000003*h ^ c, then XOR the length. -1 is remapped to -2 so it stays
// free as the unset sentinel. The empty rope hashes to 0.
//
// Two ropes with equal content hash equally regardless of shape, because the
// fold runs over the byte sequence, not the tree. Concurrent callers may race
// to compute; both arrive at the same value and the store is atomic, so the
// race is benign.
func HashValue(n Node) int64 {
	memo := n.cachedHash()
	if h := memo.Load(); h != hashUnset {
		return h
	}
	var h int64
	if n.Len() > 0 {
		h = int64(ByteAt(n, 0)) << 7
		it := NewIterator(n)
		for it.Next() {
			h = hashMultiplier*h ^ int64(it.Current())
		}
	}
	h ^= int64(n.Len())
	if h == hashUnset {
		h = -2
	}
	memo.Store(h)
	return h
}
