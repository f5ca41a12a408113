package rope

import "github.com/ropelib/rope/internal/core"

// Iterator walks a rope's bytes left to right: Next advances and reports
// whether a byte is available, Current reads it, Position gives its offset.
// The iterator caches one flat leaf at a time; for a repeat leaf the cache
// holds a single child expansion however large the repeat is.
type Iterator = core.Iterator

// Iter returns an iterator positioned before r's first byte. The iterator is
// finite and not restartable.
func (r Rope) Iter() *Iterator {
	return core.NewIterator(r.node())
}
