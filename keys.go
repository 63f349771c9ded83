// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch

import (
	"fmt"
	"slices"
)

// Keys is a strictly increasing sequence of integer keys bound to the list L.
// Key i selects the type at position i of L.
//
// Keys is immutable once built and safe for concurrent use. The zero Keys
// is not valid; keyed dispatch through it never matches.
type Keys[L List] struct {
	keys []int
}

// NewKeys validates keys against L and returns the bound sequence.
// It returns an error wrapping [ErrKeyCount] if len(keys) != L.Len(),
// or [ErrKeyOrder] if keys are not strictly increasing.
// The input slice is copied.
func NewKeys[L List](keys ...int) (Keys[L], error) {
	var l L
	if len(keys) != l.Len() {
		return Keys[L]{}, fmt.Errorf("%w: %d keys for %d types", ErrKeyCount, len(keys), l.Len())
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return Keys[L]{}, fmt.Errorf("%w: keys[%d] = %d, keys[%d] = %d", ErrKeyOrder, i-1, keys[i-1], i, keys[i])
		}
	}
	return Keys[L]{keys: slices.Clone(keys)}, nil
}

// MustKeys is like [NewKeys] but panics on invalid keys.
// Intended for package-level variable initialization:
//
//	var opcodes = tswitch.MustKeys[tswitch.Types3[Load, Store, Jump]](0x10, 0x20, 0x40)
func MustKeys[L List](keys ...int) Keys[L] {
	k, err := NewKeys[L](keys...)
	if err != nil {
		panic(err)
	}
	return k
}

// Valid reports whether k was built by [NewKeys] or [MustKeys].
func (k Keys[L]) Valid() bool { return k.keys != nil }

// Len returns the number of keys, or 0 for the zero Keys.
func (k Keys[L]) Len() int { return len(k.keys) }

// At returns the key at position i.
func (k Keys[L]) At(i int) int { return k.keys[i] }

// Search returns the position of m in O(log N).
// Returns (i, true) if found, or (0, false) otherwise.
func (k Keys[L]) Search(m int) (int, bool) {
	i, ok := slices.BinarySearch(k.keys, m)
	if !ok {
		return 0, false
	}
	return i, true
}
