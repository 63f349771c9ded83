// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch

import "reflect"

// Token is the capability passed to a dispatch callback.
// Only [Of] implements Token, so a callback recovers the selected type with
// a type switch on Of[T], or with [Is] and [Unwrap].
//
// Example:
//
//	func(tok tswitch.Token) {
//	    switch tok.(type) {
//	    case tswitch.Of[int]:
//	        // selected int
//	    case tswitch.Of[string]:
//	        // selected string
//	    }
//	}
type Token interface {
	// Zero returns the zero value of the wrapped type.
	Zero() any
	// Reflect returns the wrapped type.
	Reflect() reflect.Type
	// String returns the name of the wrapped type.
	String() string

	token()
}

// Of is the zero-size capability token for T. It carries no payload;
// converting Of[T]{} to [Token] does not allocate.
type Of[T any] struct{}

func (Of[T]) token() {}

// Zero returns the zero value of T. Callbacks use it to reach methods
// declared on T without knowing T statically:
//
//	v := tok.Zero().(interface{ Value() int }).Value()
func (Of[T]) Zero() any {
	var zero T
	return zero
}

// Reflect returns reflect.TypeFor[T]().
func (Of[T]) Reflect() reflect.Type { return reflect.TypeFor[T]() }

func (o Of[T]) String() string { return o.Reflect().String() }

// Is reports whether tok wraps exactly T.
func Is[T any](tok Token) bool {
	_, ok := tok.(Of[T])
	return ok
}

// Unwrap returns (zero T, true) if tok wraps T, or (zero T, false) otherwise.
func Unwrap[T any](tok Token) (T, bool) {
	var zero T
	return zero, Is[T](tok)
}

// launch is the thunk stored in jump tables.
// Named generic function produces a static function value per type
// instantiation, so building a table of thunks does not allocate.
func launch[T any](f func(Token)) { f(Of[T]{}) }
