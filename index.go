// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch

// Index invokes f with the token at position m of L in O(1) and returns true.
// If m >= L.Len(), f is not invoked and Index returns false.
//
// Example:
//
//	ok := tswitch.Index[tswitch.Types3[int, string, bool]](1, func(tok tswitch.Token) {
//	    // tok == tswitch.Of[string]{}
//	})
func Index[L List](m uint, f func(Token)) bool {
	var l L
	if m >= uint(l.Len()) {
		return false
	}
	l.jump(m, f)
	return true
}

// IndexLinear has the contract of [Index] but finds position m by
// comparing against each position in turn, in O(N).
func IndexLinear[L List](m uint, f func(Token)) bool {
	var l L
	return l.linear(m, f)
}

// IndexValue is [Index] for callbacks that produce a result.
// Returns (f(token), true) on a match, or (zero, false) otherwise.
// f is called directly with the token from [List.Token].
func IndexValue[L List, R any](m uint, f func(Token) R) (R, bool) {
	var l L
	if m >= uint(l.Len()) {
		var zero R
		return zero, false
	}
	return f(l.Token(int(m))), true
}
