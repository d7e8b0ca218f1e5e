// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lookup

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// Lookup - resolve an identity reference
type Lookup interface {
	Lookup(source string) (*account.Account, error)
}

// Directory - aliases and base58 accounts for one chain
type Directory struct {
	sync.RWMutex
	log      *logger.L
	testing  bool
	fileName string
	aliases  map[string]*account.Account
}

// New - create a directory, fileName may be empty for no aliases
func New(log *logger.L, testing bool, fileName string) (*Directory, error) {
	d := &Directory{
		log:      log,
		testing:  testing,
		fileName: fileName,
		aliases:  make(map[string]*account.Account),
	}

	if "" != fileName {
		if err := d.Reload(); nil != err {
			return nil, err
		}
	}
	return d, nil
}

// Lookup - alias first, then a base58 account
//
// accounts from the wrong network are not resolvable
func (d *Directory) Lookup(source string) (*account.Account, error) {
	source = strings.TrimSpace(source)
	if "" == source {
		return nil, fault.UnresolvableRecipient
	}

	d.RLock()
	a, ok := d.aliases[source]
	d.RUnlock()

	if !ok {
		var err error
		a, err = account.AccountFromBase58(source)
		if nil != err {
			d.log.Debugf("lookup: %q error: %s", source, err)
			return nil, fault.UnresolvableRecipient
		}
	}

	if a.IsTesting() != d.testing {
		d.log.Debugf("lookup: %q wrong network", source)
		return nil, fault.UnresolvableRecipient
	}
	return a, nil
}

// Add - define or replace an alias
func (d *Directory) Add(alias string, a *account.Account) {
	d.Lock()
	d.aliases[alias] = a
	d.Unlock()
}

// Count - number of aliases
func (d *Directory) Count() int {
	d.RLock()
	defer d.RUnlock()
	return len(d.aliases)
}

// Reload - replace all aliases with the contents of the file
//
// on any error the previous aliases are retained
func (d *Directory) Reload() error {
	data, err := ioutil.ReadFile(d.fileName)
	if nil != err {
		return err
	}

	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); nil != err {
		return err
	}

	aliases := make(map[string]*account.Account, len(raw))
	for alias, s := range raw {
		a, err := account.AccountFromBase58(s)
		if nil != err {
			d.log.Errorf("alias: %q account: %q error: %s", alias, s, err)
			return err
		}
		aliases[alias] = a
	}

	d.Lock()
	d.aliases = aliases
	d.Unlock()

	d.log.Infof("loaded: %d aliases from: %q", len(aliases), d.fileName)
	return nil
}

// Watch - reload the alias file whenever it is written
//
// the containing directory is watched so that editors that replace
// the file are handled
func (d *Directory) Watch(shutdown <-chan struct{}) error {
	if "" == d.fileName {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return err
	}

	if err := watcher.Add(filepath.Dir(d.fileName)); nil != err {
		watcher.Close()
		return err
	}

	go d.watch(watcher, shutdown)
	return nil
}

func (d *Directory) watch(watcher *fsnotify.Watcher, shutdown <-chan struct{}) {
	defer watcher.Close()

	target := filepath.Clean(d.fileName)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != target {
				continue loop
			}
			if 0 == event.Op&(fsnotify.Write|fsnotify.Create) {
				continue loop
			}
			if err := d.Reload(); nil != err {
				d.log.Errorf("reload: %q error: %s", d.fileName, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			d.log.Errorf("watch: %q error: %s", d.fileName, err)
		}
	}
	d.log.Info("alias watcher stopped")
}
