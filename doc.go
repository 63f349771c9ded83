// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tswitch provides type switches over a fixed list of types
// selected by a runtime integer.
//
// Given a runtime value and an ordered list of types fixed at the call site,
// tswitch invokes a callback with a zero-size capability token for the
// selected type. The set of targets is fixed at compile time; only the
// selector is dynamic.
//
// # Type Lists
//
// Go has no variadic type parameters, so lists are fixed-arity zero-size
// generic types. Position determines the index or key association:
//
//   - [Types1] through [Types8]: ordered lists of one to eight types
//   - [List]: sealed interface implemented by every TypesN
//
// A type may appear at more than one position.
//
// # Capability Tokens
//
// The callback receives a [Token]. Only [Of] implements it, so the selected
// type is recovered by a type switch on Of[T] or with:
//
//   - [Is]: Report whether a token wraps T
//   - [Unwrap]: Recover the zero value of T
//   - [Of.Zero]: Zero value of T as any, for calling methods declared on T
//   - [Of.Reflect]: The wrapped reflect.Type
//
// # Index Dispatch
//
// Select by position in [0, N):
//
//   - [Index]: O(1) through a jump table of per-type thunks
//   - [IndexLinear]: O(N) by comparing each position in turn
//   - [IndexValue]: Index for callbacks returning a value
//
// Types1 invokes its sole thunk without indexing and Types2 uses a two-way
// conditional; both agree with the table for every valid index.
//
// # Keyed Dispatch
//
// Select by an integer key from a strictly increasing sequence paired
// positionally with the list:
//
//   - [Keys]: Validated key sequence bound to a list
//   - [NewKeys], [MustKeys]: Build and validate keys once, at startup
//   - [Keyed]: O(log N) binary search, then the Index jump table
//   - [KeyedLinear]: O(N) by comparing each key in turn
//   - [KeyedValue]: Keyed for callbacks returning a value
//
// Key validation happens once when Keys is built: [ErrKeyCount] if the
// number of keys differs from the number of types, [ErrKeyOrder] if keys are
// not strictly increasing.
//
// # No Match
//
// An out-of-range index or an absent key is not an error. Every dispatch
// function returns false and does not invoke the callback. On a match the
// callback is invoked exactly once and the function returns true. Panics in
// the callback propagate to the caller unchanged.
//
// Strategy choice never changes the selection, only its cost. Dispatch holds
// no state between calls, does not allocate, and is safe for concurrent use.
//
// # Example
//
//	type Small struct{}
//	type Medium struct{}
//	type Large struct{}
//
//	type Sizes = tswitch.Types3[Small, Medium, Large]
//
//	var sizeKeys = tswitch.MustKeys[Sizes](8, 16, 32)
//
//	ok := tswitch.Keyed(16, sizeKeys, func(tok tswitch.Token) {
//		switch tok.(type) {
//		case tswitch.Of[Small]:
//			// ...
//		case tswitch.Of[Medium]:
//			// selected
//		case tswitch.Of[Large]:
//			// ...
//		}
//	})
//	// ok == true
package tswitch
