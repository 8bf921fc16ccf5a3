// Package dupset detects the first pair of equal items in a sibling set.
//
// It implements the two-tier strategy shared by list/leaf-list duplicate
// detection and unique-statement checking: a set of exactly two items is
// compared directly, while larger sets go through one hash table sized to
// the next power of two at or above the item count. Both tiers apply the
// same equality rule, so they always agree.
//
// Items are addressed by index and compared through a caller-supplied key
// function, letting one implementation serve list-key identity, leaf-list
// value identity, and per-unique-set value tuples alike.
package dupset

import (
	"errors"
	"hash/maphash"
	"math/bits"
	"strings"
)

// ErrTableSize is returned when a sibling set is too large to build a
// lookup table for. It indicates the check could not run, not that the
// data is invalid.
var ErrTableSize = errors.New("sibling table too large")

// maxItems caps the table size so the power-of-two sizing below cannot
// overflow.
const maxItems = 1 << 30

// componentSep separates key components so that ("ab","c") and ("a","bc")
// hash differently; keyTerminator finalizes every key so a key is never a
// prefix of another.
const (
	componentSep  = "\x00"
	keyTerminator = "\x1e"
)

// Key builds a comparison key from its components.
func Key(components ...string) string {
	return strings.Join(components, componentSep) + keyTerminator
}

// KeyFunc returns the comparison key for item i. ok false means the item
// is inconclusive for this comparison and must be skipped; no pair
// involving it can be reported.
type KeyFunc func(i int) (key string, ok bool)

// Find reports the indices of the first two items whose keys are equal,
// or found=false when all participating items are distinct.
func Find(n int, key KeyFunc) (first, second int, found bool, err error) {
	switch {
	case n < 2:
		return 0, 0, false, nil
	case n == 2:
		a, aok := key(0)
		if !aok {
			return 0, 0, false, nil
		}
		b, bok := key(1)
		if !bok {
			return 0, 0, false, nil
		}
		if a == b {
			return 0, 1, true, nil
		}
		return 0, 0, false, nil
	case n > maxItems:
		return 0, 0, false, ErrTableSize
	}

	t := newTable(n)
	for i := 0; i < n; i++ {
		k, ok := key(i)
		if !ok {
			continue
		}
		if prev, dup := t.insert(k, i); dup {
			return prev, i, true, nil
		}
	}
	return 0, 0, false, nil
}

// table is an open-addressing hash table with linear probing, sized to a
// power of two and kept under half load.
type table struct {
	seed   maphash.Seed
	mask   uint64
	slots  []int // item index + 1; 0 marks an empty slot
	hashes []uint64
	keys   []string
}

func newTable(n int) *table {
	size := nextPow2(n * 2)
	return &table{
		seed:   maphash.MakeSeed(),
		mask:   uint64(size - 1),
		slots:  make([]int, size),
		hashes: make([]uint64, size),
		keys:   make([]string, size),
	}
}

// insert adds key for item i, or reports the previously inserted item
// holding an equal key.
func (t *table) insert(key string, i int) (prev int, dup bool) {
	h := maphash.String(t.seed, key)
	for slot := h & t.mask; ; slot = (slot + 1) & t.mask {
		if t.slots[slot] == 0 {
			t.slots[slot] = i + 1
			t.hashes[slot] = h
			t.keys[slot] = key
			return 0, false
		}
		if t.hashes[slot] == h && t.keys[slot] == key {
			return t.slots[slot] - 1, true
		}
	}
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
