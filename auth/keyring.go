// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"crypto/subtle"
	"encoding/hex"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/configuration"
	"github.com/bitmark-inc/parkingspot/fault"
)

// Credential - an account and its key as presented by a client
type Credential struct {
	Account account.Name `json:"account"`
	Key     string       `json:"key"`
}

// layout of the accounts file
type accountsFile struct {
	Accounts []Entry `gluamapper:"accounts"`
}

type keyData struct {
	salt []byte
	hash []byte
}

// Keyring - the accounts allowed to authorise actions
//
// the accounts file is reloaded when it changes
type Keyring struct {
	sync.RWMutex
	log      *logger.L
	fileName string
	keys     map[account.Name]keyData
}

// NewKeyring - load the accounts file
func NewKeyring(log *logger.L, fileName string) (*Keyring, error) {
	name, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	k := &Keyring{
		log:      log,
		fileName: name,
	}
	err = k.Load()
	if nil != err {
		return nil, err
	}
	return k, nil
}

// Load - read the accounts file and replace all keys
//
// on error the previous keys are kept
func (k *Keyring) Load() error {
	var file accountsFile
	err := configuration.ParseConfigurationFile(k.fileName, &file, nil)
	if nil != err {
		k.log.Errorf("accounts file: %q  error: %s", k.fileName, err)
		return err
	}

	keys := make(map[account.Name]keyData, len(file.Accounts))
	for i, e := range file.Accounts {
		name, err := account.NameFromString(e.Name)
		if nil != err {
			k.log.Errorf("accounts file entry[%d]: %q  error: %s", i, e.Name, err)
			return err
		}
		salt, err := hex.DecodeString(e.Salt)
		if nil != err || 0 == len(salt) {
			k.log.Errorf("accounts file entry[%d]: %q  invalid salt", i, e.Name)
			return fault.InvalidCredential
		}
		hash, err := hex.DecodeString(e.Hash)
		if nil != err || hashLength != len(hash) {
			k.log.Errorf("accounts file entry[%d]: %q  invalid hash", i, e.Name)
			return fault.InvalidCredential
		}
		if _, ok := keys[name]; ok {
			k.log.Warnf("accounts file: duplicate: %s  last entry used", name)
		}
		keys[name] = keyData{
			salt: salt,
			hash: hash,
		}
	}

	k.Lock()
	k.keys = keys
	k.Unlock()

	k.log.Infof("loaded: %d accounts", len(keys))
	return nil
}

// Count - number of accounts
func (k *Keyring) Count() int {
	k.RLock()
	defer k.RUnlock()
	return len(k.keys)
}

// Verify - check every credential
//
// any unknown account or wrong key rejects the whole set
func (k *Keyring) Verify(credentials []Credential) (Signatories, error) {
	k.RLock()
	keys := k.keys
	k.RUnlock()

	s := NewSignatories()
	for _, c := range credentials {
		data, ok := keys[c.Account]
		if !ok {
			k.log.Warnf("verify: unknown account: %s", c.Account)
			return nil, fault.InvalidCredential
		}
		hash, err := hashKey(c.Key, data.salt)
		if nil != err {
			return nil, err
		}
		if 1 != subtle.ConstantTimeCompare(hash, data.hash) {
			k.log.Warnf("verify: wrong key for account: %s", c.Account)
			return nil, fault.InvalidCredential
		}
		s[c.Account] = struct{}{}
	}
	return s, nil
}

// Run - background process to reload the accounts file on change
//
// the directory is watched so that editors that replace the file
// are also detected
func (k *Keyring) Run(args interface{}, shutdown <-chan struct{}) {
	log := k.log

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		<-shutdown
		return
	}
	defer watcher.Close()

	err = watcher.Add(filepath.Dir(k.fileName))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		<-shutdown
		return
	}

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(k.fileName) {
				continue loop
			}
			log.Debugf("file event: %v", event)
			if !isChangeEvent(event) {
				continue loop
			}
			if err := k.Load(); nil != err {
				log.Warnf("reload failed, keeping previous accounts: %s", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("stopped")
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) != 0
}
