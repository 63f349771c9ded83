// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch_test

import (
	"fmt"

	"code.hybscloud.com/tswitch"
)

type Load struct{}
type Store struct{}
type Jump struct{}

func (Load) Mnemonic() string  { return "ld" }
func (Store) Mnemonic() string { return "st" }
func (Jump) Mnemonic() string  { return "jmp" }

type Ops = tswitch.Types3[Load, Store, Jump]

var opcodes = tswitch.MustKeys[Ops](0x10, 0x20, 0x40)

func mnemonic(tok tswitch.Token) {
	fmt.Println(tok.Zero().(interface{ Mnemonic() string }).Mnemonic())
}

func ExampleIndex() {
	ok := tswitch.Index[Ops](2, mnemonic)
	fmt.Println(ok)
	ok = tswitch.Index[Ops](3, mnemonic)
	fmt.Println(ok)
	// Output:
	// jmp
	// true
	// false
}

func ExampleKeyed() {
	ok := tswitch.Keyed(0x20, opcodes, mnemonic)
	fmt.Println(ok)
	ok = tswitch.Keyed(0x30, opcodes, mnemonic)
	fmt.Println(ok)
	// Output:
	// st
	// true
	// false
}

func ExampleKeyedValue() {
	name, ok := tswitch.KeyedValue(0x40, opcodes, func(tok tswitch.Token) string {
		switch tok.(type) {
		case tswitch.Of[Load]:
			return "load"
		case tswitch.Of[Store]:
			return "store"
		default:
			return "jump"
		}
	})
	fmt.Println(name, ok)
	// Output:
	// jump true
}

func ExampleNewKeys() {
	_, err := tswitch.NewKeys[Ops](0x10, 0x10, 0x40)
	fmt.Println(err)
	// Output:
	// tswitch: keys are not strictly increasing: keys[0] = 16, keys[1] = 16
}
