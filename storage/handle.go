// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Handle - the record access interface for a single pool
//
// the unexported methods are the staged (transactional) variants used
// by Transaction
type Handle interface {
	Begin() error
	Commit() error
	Get(key []byte) []byte
	GetN(key []byte) (uint64, bool)
	Has(key []byte) bool
	Put(key []byte, value []byte)
	PutN(key []byte, value uint64)
	Delete(key []byte)
	put(key []byte, value []byte)
	putN(key []byte, value uint64)
	getN(key []byte) (uint64, bool)
	remove(key []byte)
}

// PoolHandle - handle for a specific pool
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// store a key/value bytes pair into the current batch
func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

// Put - store a key/value bytes pair
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.put(key, value)
}

// store a key with an 8 byte big endian value into the current batch
func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

// PutN - store a key with an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	p.putN(key, value)
}

// remove a key from the database
func (p *PoolHandle) remove(key []byte) {
	p.dataAccess.Delete(p.prefixKey(key))
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	p.remove(key)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if nil != err {
		return nil
	}
	return value
}

// read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) getN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// GetN - read a record and decode first 8 bytes as big endian uint64
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return p.getN(key)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	has, err := p.dataAccess.Has(p.prefixKey(key))
	if nil != err {
		return false
	}
	return has
}

// Begin - mark the underlying access as in use
func (p *PoolHandle) Begin() error {
	return p.dataAccess.Begin()
}

// Commit - flush the staged changes of the underlying access
func (p *PoolHandle) Commit() error {
	return p.dataAccess.Commit()
}
