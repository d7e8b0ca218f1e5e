// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
)

var cursorElements = []stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
}

func keysOf(elements []Element) []string {
	keys := make([]string, 0, len(elements))
	for _, e := range elements {
		keys = append(keys, string(e.Key))
	}
	return keys
}

func TestFetchPages(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	putElements(t, s, s.Pool.Kitties, cursorElements)
	putElements(t, s, s.Pool.OwnerList, []stringElement{{"another-pool", "x"}})

	cursor := s.Pool.Kitties.NewFetchCursor()

	page, err := cursor.Fetch(3)
	assert.Nil(t, err, "first page")
	assert.Equal(t, []string{"key-five", "key-four", "key-one"}, keysOf(page), "first page keys")
	assert.Equal(t, "data-five", string(page[0].Value), "first value")

	page, err = cursor.Fetch(3)
	assert.Nil(t, err, "second page")
	assert.Equal(t, []string{"key-seven", "key-six", "key-three"}, keysOf(page), "second page keys")

	page, err = cursor.Fetch(3)
	assert.Nil(t, err, "last page")
	assert.Equal(t, []string{"key-two"}, keysOf(page), "last page keys")

	page, err = cursor.Fetch(3)
	assert.Nil(t, err, "past end")
	assert.Equal(t, 0, len(page), "past end")
}

func TestFetchPrefixAndSeek(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	putElements(t, s, s.Pool.Kitties, cursorElements)
	putElements(t, s, s.Pool.Kitties, []stringElement{{"other", "x"}})

	page, err := s.Pool.Kitties.NewFetchCursor().Prefix([]byte("key-s")).Fetch(10)
	assert.Nil(t, err, "prefix")
	assert.Equal(t, []string{"key-seven", "key-six"}, keysOf(page), "prefix keys")

	page, err = s.Pool.Kitties.NewFetchCursor().Prefix([]byte("key-")).Seek([]byte("key-t")).Fetch(10)
	assert.Nil(t, err, "prefix and seek")
	assert.Equal(t, []string{"key-three", "key-two"}, keysOf(page), "seek keys")
}

func TestFetchInvalid(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	_, err := s.Pool.Kitties.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	var cursor *FetchCursor
	_, err = cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor")
}

func TestMap(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	putElements(t, s, s.Pool.Kitties, cursorElements)

	n := 0
	err := s.Pool.Kitties.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, len(cursorElements), n, "map count")

	stop := errors.New("stop")
	n = 0
	err = s.Pool.Kitties.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 2 == n {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "map error")
	assert.Equal(t, 2, n, "map stopped")
}
