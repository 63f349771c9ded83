// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tswitch

import "errors"

var (
	// ErrKeyCount is returned when the number of keys differs from the
	// number of types in the list.
	ErrKeyCount = errors.New("tswitch: key count does not match type count")
	// ErrKeyOrder is returned when keys are not strictly increasing.
	// Duplicate keys violate the order.
	ErrKeyOrder = errors.New("tswitch: keys are not strictly increasing")
)
