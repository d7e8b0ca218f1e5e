// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "wrong Limit")

	blocked := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(blocked), "wrong blocked Limit")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 10, 100), "wrong LimitN")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 100), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 101, 100), "count too large")

	// burst smaller than the request can never be satisfied
	small := rate.NewLimiter(1000, 5)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(small, 10, 100), "over burst")
}
