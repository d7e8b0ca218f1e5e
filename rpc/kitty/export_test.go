// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"time"
)

// SetClock - fix the time used for nonce checks
func (kitty *Kitty) SetClock(now func() time.Time) {
	kitty.now = now
}
