// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch

// Keyed looks up m in keys by binary search. If m is key i, it invokes f
// with the token at position i of L through the [Index] jump table and
// returns true. Otherwise f is not invoked and Keyed returns false.
//
// Example:
//
//	type Ops = tswitch.Types3[Load, Store, Jump]
//	var opcodes = tswitch.MustKeys[Ops](0x10, 0x20, 0x40)
//
//	ok := tswitch.Keyed(0x20, opcodes, func(tok tswitch.Token) {
//	    // tok == tswitch.Of[Store]{}
//	})
func Keyed[L List](m int, keys Keys[L], f func(Token)) bool {
	i, ok := keys.Search(m)
	if !ok {
		return false
	}
	var l L
	l.jump(uint(i), f)
	return true
}

// KeyedLinear has the contract of [Keyed] but compares m against each
// key in turn, in O(N).
func KeyedLinear[L List](m int, keys Keys[L], f func(Token)) bool {
	if !keys.Valid() {
		return false
	}
	var l L
	return l.linearKeyed(keys.keys, m, f)
}

// KeyedValue is [Keyed] for callbacks that produce a result.
// Returns (f(token), true) on a match, or (zero, false) otherwise.
func KeyedValue[L List, R any](m int, keys Keys[L], f func(Token) R) (R, bool) {
	i, ok := keys.Search(m)
	if !ok {
		var zero R
		return zero, false
	}
	var l L
	return f(l.Token(i)), true
}
