// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch

import "fmt"

// List is a fixed, ordered list of dispatch targets.
// It is implemented only by Types1 through Types8, all zero-size;
// the element types are carried by the type arguments alone.
type List interface {
	// Len returns the number of targets in the list.
	Len() int
	// Token returns the capability token at position i.
	// Panics if i is outside [0, Len()).
	Token(i int) Token

	// jump invokes f through the jump table. Callers guarantee m < Len().
	jump(m uint, f func(Token))
	// linear compares m against each position in turn.
	linear(m uint, f func(Token)) bool
	// linearKeyed compares m against keys in turn; len(keys) == Len().
	linearKeyed(keys []int, m int, f func(Token)) bool
}

//go:noinline
func tokenOutOfRange(i, n int) {
	panic(fmt.Sprintf("tswitch: token index %d out of range [0, %d)", i, n))
}

// Types1 is a single-target list. Index dispatch invokes T1 without indexing.
type Types1[T1 any] struct{}

func (Types1[T1]) Len() int { return 1 }

func (Types1[T1]) Token(i int) Token {
	if i != 0 {
		tokenOutOfRange(i, 1)
	}
	return Of[T1]{}
}

func (Types1[T1]) jump(_ uint, f func(Token)) { launch[T1](f) }

func (Types1[T1]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return false
}

func (Types1[T1]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return false
}

// Types2 is a two-target list. Index dispatch uses a two-way conditional
// instead of a jump table.
type Types2[T1, T2 any] struct{}

func (Types2[T1, T2]) Len() int { return 2 }

func (Types2[T1, T2]) Token(i int) Token {
	if uint(i) >= 2 {
		tokenOutOfRange(i, 2)
	}
	return [...]Token{Of[T1]{}, Of[T2]{}}[i]
}

func (Types2[T1, T2]) jump(m uint, f func(Token)) {
	if m == 0 {
		launch[T1](f)
	} else {
		launch[T2](f)
	}
}

func (Types2[T1, T2]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return Types1[T2]{}.linear(m-1, f)
}

func (Types2[T1, T2]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return Types1[T2]{}.linearKeyed(keys[1:], m, f)
}

// Types3 is a 3-target list dispatched through a jump table of 3 thunks.
type Types3[T1, T2, T3 any] struct{}

func (Types3[T1, T2, T3]) Len() int { return 3 }

func (Types3[T1, T2, T3]) Token(i int) Token {
	if uint(i) >= 3 {
		tokenOutOfRange(i, 3)
	}
	return [...]Token{Of[T1]{}, Of[T2]{}, Of[T3]{}}[i]
}

func (Types3[T1, T2, T3]) jump(m uint, f func(Token)) {
	jmp := [...]func(func(Token)){launch[T1], launch[T2], launch[T3]}
	jmp[m](f)
}

func (Types3[T1, T2, T3]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return Types2[T2, T3]{}.linear(m-1, f)
}

func (Types3[T1, T2, T3]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return Types2[T2, T3]{}.linearKeyed(keys[1:], m, f)
}

// Types4 is a 4-target list dispatched through a jump table of 4 thunks.
type Types4[T1, T2, T3, T4 any] struct{}

func (Types4[T1, T2, T3, T4]) Len() int { return 4 }

func (Types4[T1, T2, T3, T4]) Token(i int) Token {
	if uint(i) >= 4 {
		tokenOutOfRange(i, 4)
	}
	return [...]Token{Of[T1]{}, Of[T2]{}, Of[T3]{}, Of[T4]{}}[i]
}

func (Types4[T1, T2, T3, T4]) jump(m uint, f func(Token)) {
	jmp := [...]func(func(Token)){launch[T1], launch[T2], launch[T3], launch[T4]}
	jmp[m](f)
}

func (Types4[T1, T2, T3, T4]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return Types3[T2, T3, T4]{}.linear(m-1, f)
}

func (Types4[T1, T2, T3, T4]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return Types3[T2, T3, T4]{}.linearKeyed(keys[1:], m, f)
}

// Types5 is a 5-target list dispatched through a jump table of 5 thunks.
type Types5[T1, T2, T3, T4, T5 any] struct{}

func (Types5[T1, T2, T3, T4, T5]) Len() int { return 5 }

func (Types5[T1, T2, T3, T4, T5]) Token(i int) Token {
	if uint(i) >= 5 {
		tokenOutOfRange(i, 5)
	}
	return [...]Token{Of[T1]{}, Of[T2]{}, Of[T3]{}, Of[T4]{}, Of[T5]{}}[i]
}

func (Types5[T1, T2, T3, T4, T5]) jump(m uint, f func(Token)) {
	jmp := [...]func(func(Token)){launch[T1], launch[T2], launch[T3], launch[T4], launch[T5]}
	jmp[m](f)
}

func (Types5[T1, T2, T3, T4, T5]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return Types4[T2, T3, T4, T5]{}.linear(m-1, f)
}

func (Types5[T1, T2, T3, T4, T5]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return Types4[T2, T3, T4, T5]{}.linearKeyed(keys[1:], m, f)
}

// Types6 is a 6-target list dispatched through a jump table of 6 thunks.
type Types6[T1, T2, T3, T4, T5, T6 any] struct{}

func (Types6[T1, T2, T3, T4, T5, T6]) Len() int { return 6 }

func (Types6[T1, T2, T3, T4, T5, T6]) Token(i int) Token {
	if uint(i) >= 6 {
		tokenOutOfRange(i, 6)
	}
	return [...]Token{Of[T1]{}, Of[T2]{}, Of[T3]{}, Of[T4]{}, Of[T5]{}, Of[T6]{}}[i]
}

func (Types6[T1, T2, T3, T4, T5, T6]) jump(m uint, f func(Token)) {
	jmp := [...]func(func(Token)){launch[T1], launch[T2], launch[T3], launch[T4], launch[T5], launch[T6]}
	jmp[m](f)
}

func (Types6[T1, T2, T3, T4, T5, T6]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return Types5[T2, T3, T4, T5, T6]{}.linear(m-1, f)
}

func (Types6[T1, T2, T3, T4, T5, T6]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return Types5[T2, T3, T4, T5, T6]{}.linearKeyed(keys[1:], m, f)
}

// Types7 is a 7-target list dispatched through a jump table of 7 thunks.
type Types7[T1, T2, T3, T4, T5, T6, T7 any] struct{}

func (Types7[T1, T2, T3, T4, T5, T6, T7]) Len() int { return 7 }

func (Types7[T1, T2, T3, T4, T5, T6, T7]) Token(i int) Token {
	if uint(i) >= 7 {
		tokenOutOfRange(i, 7)
	}
	return [...]Token{Of[T1]{}, Of[T2]{}, Of[T3]{}, Of[T4]{}, Of[T5]{}, Of[T6]{}, Of[T7]{}}[i]
}

func (Types7[T1, T2, T3, T4, T5, T6, T7]) jump(m uint, f func(Token)) {
	jmp := [...]func(func(Token)){launch[T1], launch[T2], launch[T3], launch[T4], launch[T5], launch[T6], launch[T7]}
	jmp[m](f)
}

func (Types7[T1, T2, T3, T4, T5, T6, T7]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return Types6[T2, T3, T4, T5, T6, T7]{}.linear(m-1, f)
}

func (Types7[T1, T2, T3, T4, T5, T6, T7]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return Types6[T2, T3, T4, T5, T6, T7]{}.linearKeyed(keys[1:], m, f)
}

// Types8 is an 8-target list dispatched through a jump table of 8 thunks.
type Types8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct{}

func (Types8[T1, T2, T3, T4, T5, T6, T7, T8]) Len() int { return 8 }

func (Types8[T1, T2, T3, T4, T5, T6, T7, T8]) Token(i int) Token {
	if uint(i) >= 8 {
		tokenOutOfRange(i, 8)
	}
	return [...]Token{Of[T1]{}, Of[T2]{}, Of[T3]{}, Of[T4]{}, Of[T5]{}, Of[T6]{}, Of[T7]{}, Of[T8]{}}[i]
}

func (Types8[T1, T2, T3, T4, T5, T6, T7, T8]) jump(m uint, f func(Token)) {
	jmp := [...]func(func(Token)){launch[T1], launch[T2], launch[T3], launch[T4], launch[T5], launch[T6], launch[T7], launch[T8]}
	jmp[m](f)
}

func (Types8[T1, T2, T3, T4, T5, T6, T7, T8]) linear(m uint, f func(Token)) bool {
	if m == 0 {
		launch[T1](f)
		return true
	}
	return Types7[T2, T3, T4, T5, T6, T7, T8]{}.linear(m-1, f)
}

func (Types8[T1, T2, T3, T4, T5, T6, T7, T8]) linearKeyed(keys []int, m int, f func(Token)) bool {
	if keys[0] == m {
		launch[T1](f)
		return true
	}
	return Types7[T2, T3, T4, T5, T6, T7, T8]{}.linearKeyed(keys[1:], m, f)
}
