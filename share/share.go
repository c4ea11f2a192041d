// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package share - the ownership share registry
//
// Each property carries a set of per-owner percentage stakes.  A
// stake is registered either by the contract owner or by the stake
// owner itself, re-registration simply overwrites the previous
// record.  Percentages of different owners are not required to sum
// to one hundred.
package share

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/records"
	"github.com/bitmark-inc/propertyd/storage"
)

// globals
var globalData struct {
	sync.RWMutex
	log  *logger.L
	pool storage.Handle

	// set once during initialise
	initialised bool
}

// Initialise - connect the registry to its pool
func Initialise(pool storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("share")
	globalData.log.Info("starting…")
	globalData.pool = pool

	globalData.initialised = true
	return nil
}

// Finalise - shut down the registry
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

// Register - store an owner's percentage stake in a property
//
// allowed for the contract owner and for the stake owner itself; an
// existing stake for the same owner is overwritten
func Register(caller identity.Identity, propertyId uint64, owner identity.Identity, percentage uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if owner.IsZero() {
		return fault.ErrMissingParameters
	}
	if caller != owner && !admin.IsOwner(caller) {
		return fault.ErrNotAuthorized
	}
	if percentage > 100 {
		return fault.ErrInvalidPercentage
	}

	trx := storage.NewDBTransaction()

	record := records.ShareRecord{
		Percentage: percentage,
		UpdatedAt:  uint64(time.Now().Unix()),
		Sequence:   admin.NextSequence(trx),
	}
	trx.Put(globalData.pool, records.ShareKey(propertyId, owner), record.Pack())

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("registered share: property: %d  owner: %s  percentage: %d", propertyId, owner, percentage)
	return nil
}

// Get - fetch an owner's stake in a property
func Get(propertyId uint64, owner identity.Identity) (*records.ShareRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	packed := globalData.pool.Get(records.ShareKey(propertyId, owner))
	if nil == packed {
		return nil, fault.ErrShareNotFound
	}

	return records.Packed(packed).UnpackShare()
}
