// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - the single serialization boundary for contract operations
//
// Begin blocks until exclusive access is granted, so every operation
// runs against the store as one indivisible step; either Commit writes
// all staged effects atomically or Abort discards them all.
type Transaction interface {
	Begin()
	Abort()
	Commit() error
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
}

// TransactionData - transaction over a set of data accesses
type TransactionData struct {
	exclusive sync.Mutex
	access    []DataAccess
	inUse     bool
}

func newTransaction(access []DataAccess) Transaction {
	return &TransactionData{
		access: access,
		inUse:  false,
	}
}

// Begin - block until this transaction is the only one in progress
func (t *TransactionData) Begin() {
	t.exclusive.Lock()
	for _, access := range t.access {
		// cannot fail: the exclusive lock is already held
		_ = access.Begin()
	}
	t.inUse = true
}

// Commit - write all staged changes and release exclusivity
//
// on a write error the staged changes of the failing access are
// dropped so the store keeps its pre-transaction state
func (t *TransactionData) Commit() error {
	var err error
	for _, access := range t.access {
		if e := access.Commit(); nil != e {
			access.Abort()
			if nil == err {
				err = e
			}
		}
	}
	t.inUse = false
	t.exclusive.Unlock()
	return err
}

// Abort - discard all staged changes and release exclusivity
func (t *TransactionData) Abort() {
	for _, access := range t.access {
		access.Abort()
	}
	t.inUse = false
	t.exclusive.Unlock()
}

// InUse - check if a transaction is in progress
func (t *TransactionData) InUse() bool {
	for _, access := range t.access {
		if access.InUse() {
			return true
		}
	}
	return false
}

// Put - stage a key/value pair for a pool
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

// PutN - stage a key with an 8 byte big endian value for a pool
func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.putN(key, value)
}

// Delete - stage a key removal for a pool
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

// Get - read a value through the staged changes
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

// GetN - read an 8 byte big endian value through the staged changes
func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.getN(key)
}

// Has - check a key through the staged changes
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
