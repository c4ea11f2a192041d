// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - the contract owner singleton
//
// The contract owner is the privileged identity allowed to perform
// administrative operations.  It is seeded from the configured
// deployer identity the first time the store is created and can only
// be changed by a transfer operation invoked by the current owner.
package admin

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/storage"
)

// keys inside the admin pool
var (
	ownerKey    = []byte("OWNER")
	sequenceKey = []byte("SEQ")
)

// globals
var globalData struct {
	sync.RWMutex
	log   *logger.L
	pool  storage.Handle
	owner identity.Identity

	// set once during initialise
	initialised bool
}

// Initialise - load or seed the contract owner
//
// the deployer identity is only used when the store has no owner
// record yet, i.e. on the very first start
func Initialise(pool storage.Handle, deployer identity.Identity) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("admin")
	globalData.log.Info("starting…")
	globalData.pool = pool

	packed := pool.Get(ownerKey)
	if nil == packed {
		if deployer.IsZero() {
			return fault.ErrMissingParameters
		}

		trx := storage.NewDBTransaction()
		trx.Put(pool, ownerKey, deployer[:])
		if err := trx.Commit(); nil != err {
			return err
		}

		globalData.owner = deployer
		globalData.log.Infof("seeded contract owner: %s", deployer)

	} else {
		if identity.Size != len(packed) {
			return fault.ErrRecordCorrupted
		}
		copy(globalData.owner[:], packed)
		globalData.log.Infof("contract owner: %s", globalData.owner)
	}

	globalData.initialised = true
	return nil
}

// Finalise - shut down the owner singleton
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// ContractOwner - the current privileged identity
func ContractOwner() identity.Identity {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.owner
}

// IsOwner - check a caller against the current privileged identity
func IsOwner(caller identity.Identity) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return caller == globalData.owner
}

// Transfer - hand the contract over to a new owner
//
// only the current owner may do this
//
// the transaction is taken before the admin mutex: every writer in
// the system orders transaction first, mutex second, so the two can
// never wait on each other
func Transfer(caller identity.Identity, newOwner identity.Identity) error {
	globalData.RLock()
	initialised := globalData.initialised
	globalData.RUnlock()
	if !initialised {
		return fault.ErrNotInitialised
	}

	trx := storage.NewDBTransaction()

	globalData.Lock()
	defer globalData.Unlock()

	if caller != globalData.owner {
		trx.Abort()
		return fault.ErrNotAuthorized
	}
	if newOwner.IsZero() {
		trx.Abort()
		return fault.ErrMissingParameters
	}

	trx.Put(globalData.pool, ownerKey, newOwner[:])
	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("contract owner transferred: %s -> %s", caller, newOwner)
	globalData.owner = newOwner
	return nil
}

// NextSequence - advance and return the global sequence counter
//
// must be called inside the caller's transaction so the counter
// moves together with the record that consumed it
func NextSequence(trx storage.Transaction) uint64 {
	globalData.RLock()
	pool := globalData.pool
	globalData.RUnlock()

	n, _ := trx.GetN(pool, sequenceKey)
	n += 1
	trx.PutN(pool, sequenceKey, n)
	return n
}
