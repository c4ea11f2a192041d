// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/propertyd/fault"
)

// DataAccess - staged access to a single database
type DataAccess interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte)
}

// AccessData - batch staged over a LevelDB handle
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) DataAccess {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - mark the batch as in use
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionAlreadyInProgress
	}

	d.inUse = true
	return nil
}

// Put - stage a key/value pair
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// Delete - stage a key removal
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// Commit - write the staged changes in one atomic batch
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	if nil != err {
		return err
	}

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return nil
}

// Abort - drop all staged changes
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// InUse - check if a batch is active
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Get - read through the staged changes then the database
//
// a missing key returns nil, nil
func (d *AccessData) Get(key []byte) ([]byte, error) {
	if value, found := d.cache.Get(string(key)); found {
		return value, nil
	}

	// a staged delete must report missing even if still on disk
	if d.cache.Deleted(string(key)) {
		return nil, nil
	}

	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check through the staged changes then the database
func (d *AccessData) Has(key []byte) (bool, error) {
	if _, found := d.cache.Get(string(key)); found {
		return true, nil
	}

	if d.cache.Deleted(string(key)) {
		return false, nil
	}

	return d.db.Has(key, nil)
}
