// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/fault"
)

// compact - plan the removal of slot from a list of count items
//
// last is the slot that becomes free, if move is true the item in
// last must be moved into slot before last is cleared; the new count
// is always last
func compact(count uint32, slot uint32) (last uint32, move bool, err error) {
	if slot >= count {
		return 0, false, fault.InvalidSlot
	}
	last = count - 1
	return last, slot != last, nil
}
