// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lookup_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/lookup"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func writeAliases(t *testing.T, fileName string, content string) {
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write aliases error: %s", err)
	}
}

func TestLookupBase58(t *testing.T) {
	d, err := lookup.New(logger.New(fixtures.LogCategory), true, "")
	assert.Nil(t, err, "new")

	a, err := d.Lookup(fixtures.Bob.Account.String())
	assert.Nil(t, err, "lookup")
	assert.True(t, fixtures.Bob.Account.Equal(a), "wrong account")

	a, err = d.Lookup("  " + fixtures.Bob.Account.String() + "\n")
	assert.Nil(t, err, "lookup with spaces")
	assert.True(t, fixtures.Bob.Account.Equal(a), "wrong account with spaces")
}

func TestLookupUnresolvable(t *testing.T) {
	d, err := lookup.New(logger.New(fixtures.LogCategory), true, "")
	assert.Nil(t, err, "new")

	for _, s := range []string{"", "nobody", "3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn"} {
		_, err := d.Lookup(s)
		assert.Equal(t, fault.UnresolvableRecipient, err, "source: %q", s)
	}

	// live account on a testing chain
	_, err = d.Lookup(fixtures.LiveDave.Account.String())
	assert.Equal(t, fault.UnresolvableRecipient, err, "wrong network")
}

func TestLookupAlias(t *testing.T) {
	d, err := lookup.New(logger.New(fixtures.LogCategory), true, "")
	assert.Nil(t, err, "new")

	d.Add("carol", fixtures.Carol.Account)
	assert.Equal(t, 1, d.Count(), "alias count")

	a, err := d.Lookup("carol")
	assert.Nil(t, err, "lookup alias")
	assert.True(t, fixtures.Carol.Account.Equal(a), "wrong account")
}

func TestLoadAndReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "kitty-aliases")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "aliases.json")
	writeAliases(t, fileName, `{"alice": "`+fixtures.Alice.Account.String()+`"}`)

	d, err := lookup.New(logger.New(fixtures.LogCategory), true, fileName)
	assert.Nil(t, err, "new")
	assert.Equal(t, 1, d.Count(), "initial aliases")

	a, err := d.Lookup("alice")
	assert.Nil(t, err, "lookup alice")
	assert.True(t, fixtures.Alice.Account.Equal(a), "alice account")

	// invalid content keeps the previous aliases
	writeAliases(t, fileName, `{"bob": "not-an-account"}`)
	assert.NotNil(t, d.Reload(), "invalid reload")
	_, err = d.Lookup("alice")
	assert.Nil(t, err, "alice retained")

	writeAliases(t, fileName, `{"bob": "`+fixtures.Bob.Account.String()+`"}`)
	assert.Nil(t, d.Reload(), "reload")
	_, err = d.Lookup("alice")
	assert.Equal(t, fault.UnresolvableRecipient, err, "alice removed")
	_, err = d.Lookup("bob")
	assert.Nil(t, err, "bob added")
}

func TestWatch(t *testing.T) {
	dir, err := ioutil.TempDir("", "kitty-aliases")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "aliases.json")
	writeAliases(t, fileName, `{}`)

	d, err := lookup.New(logger.New(fixtures.LogCategory), true, fileName)
	assert.Nil(t, err, "new")

	shutdown := make(chan struct{})
	defer close(shutdown)
	assert.Nil(t, d.Watch(shutdown), "watch")

	writeAliases(t, fileName, `{"carol": "`+fixtures.Carol.Account.String()+`"}`)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := d.Lookup("carol"); nil == err {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Errorf("alias file change was not picked up")
}

func TestNewMissingFile(t *testing.T) {
	_, err := lookup.New(logger.New(fixtures.LogCategory), true, "/no/such/aliases.json")
	assert.NotNil(t, err, "missing alias file")
}
