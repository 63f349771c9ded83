// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch_test

import (
	"testing"

	"code.hybscloud.com/tswitch"
)

// Positional fixture types. Value reports the position.
type p0 struct{}
type p1 struct{}
type p2 struct{}
type p3 struct{}
type p4 struct{}
type p5 struct{}
type p6 struct{}
type p7 struct{}

func (p0) Value() int { return 0 }
func (p1) Value() int { return 1 }
func (p2) Value() int { return 2 }
func (p3) Value() int { return 3 }
func (p4) Value() int { return 4 }
func (p5) Value() int { return 5 }
func (p6) Value() int { return 6 }
func (p7) Value() int { return 7 }

type valuer interface{ Value() int }

type five = tswitch.Types5[p0, p1, p2, p3, p4]

var fiveKeys = tswitch.MustKeys[five](11, 22, 25, 33, 55)

// recorder counts callback invocations and keeps the last token.
type recorder struct {
	calls int
	tok   tswitch.Token
}

func (r *recorder) visit(tok tswitch.Token) {
	r.calls++
	r.tok = tok
}

func (r *recorder) value(t *testing.T) int {
	t.Helper()
	v, ok := r.tok.Zero().(valuer)
	if !ok {
		t.Fatalf("token %v does not wrap a fixture type", r.tok)
	}
	return v.Value()
}

// checkIndexAgree verifies that Index and IndexLinear select Token(m) for
// every m in range and nothing outside it.
func checkIndexAgree[L tswitch.List](t *testing.T) {
	t.Helper()
	var l L
	n := l.Len()
	for m := range n + 3 {
		var fast, slow recorder
		okFast := tswitch.Index[L](uint(m), fast.visit)
		okSlow := tswitch.IndexLinear[L](uint(m), slow.visit)
		if m >= n {
			if okFast || okSlow || fast.calls != 0 || slow.calls != 0 {
				t.Fatalf("%T m=%d: got (%v, %v) calls (%d, %d), want no match", l, m, okFast, okSlow, fast.calls, slow.calls)
			}
			continue
		}
		if !okFast || !okSlow {
			t.Fatalf("%T m=%d: got (%v, %v), want (true, true)", l, m, okFast, okSlow)
		}
		if fast.calls != 1 || slow.calls != 1 {
			t.Fatalf("%T m=%d: calls (%d, %d), want (1, 1)", l, m, fast.calls, slow.calls)
		}
		want := l.Token(m)
		if fast.tok != want || slow.tok != want {
			t.Fatalf("%T m=%d: got (%v, %v), want %v", l, m, fast.tok, slow.tok, want)
		}
		if got := fast.value(t); got != m {
			t.Fatalf("%T m=%d: selected position %d", l, m, got)
		}
	}
}

// checkKeyedAgree verifies that Keyed and KeyedLinear select Token(i) for
// key i and nothing for keys in between or around.
func checkKeyedAgree[L tswitch.List](t *testing.T, keys ...int) {
	t.Helper()
	var l L
	k, err := tswitch.NewKeys[L](keys...)
	if err != nil {
		t.Fatalf("%T: NewKeys(%v): %v", l, keys, err)
	}
	for m := keys[0] - 2; m <= keys[len(keys)-1]+2; m++ {
		var fast, slow recorder
		okFast := tswitch.Keyed(m, k, fast.visit)
		okSlow := tswitch.KeyedLinear(m, k, slow.visit)
		if okFast != okSlow || fast.calls != slow.calls || fast.tok != slow.tok {
			t.Fatalf("%T m=%d: Keyed (%v, %d, %v) != KeyedLinear (%v, %d, %v)",
				l, m, okFast, fast.calls, fast.tok, okSlow, slow.calls, slow.tok)
		}
		i, found := k.Search(m)
		if okFast != found {
			t.Fatalf("%T m=%d: got %v, want %v", l, m, okFast, found)
		}
		if !found {
			if fast.calls != 0 {
				t.Fatalf("%T m=%d: callback invoked %d times on miss", l, m, fast.calls)
			}
			continue
		}
		if fast.calls != 1 {
			t.Fatalf("%T m=%d: calls %d, want 1", l, m, fast.calls)
		}
		if want := l.Token(i); fast.tok != want {
			t.Fatalf("%T m=%d: got %v, want %v", l, m, fast.tok, want)
		}
	}
}
