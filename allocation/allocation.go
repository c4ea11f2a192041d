// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocation - proportional expense allocation and payment
//
// Once an expense is distributed each owner can be allocated their
// proportional part of its amount.  An allocation is keyed by the
// owner identity and tracks whether that owner has settled it.
package allocation

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/records"
	"github.com/bitmark-inc/propertyd/storage"
)

// globals
var globalData struct {
	sync.RWMutex
	log         *logger.L
	pool        storage.Handle
	expensePool storage.Handle
	sharePool   storage.Handle

	// set once during initialise
	initialised bool
}

// Initialise - connect the engine to its pools
func Initialise(pool storage.Handle, expensePool storage.Handle, sharePool storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("allocation")
	globalData.log.Info("starting…")
	globalData.pool = pool
	globalData.expensePool = expensePool
	globalData.sharePool = sharePool

	globalData.initialised = true
	return nil
}

// Finalise - shut down the engine
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

// proportion - floor(amount * percentage / 100) without overflow
//
// split the amount into hundreds and remainder: the remainder term is
// at most 99 * 100 so neither multiplication can wrap a uint64
func proportion(amount uint64, percentage uint64) uint64 {
	return amount/100*percentage + amount%100*percentage/100
}

// Allocate - compute and store an owner's part of a distributed expense
//
// an existing allocation for the same owner is overwritten and its
// paid flag is reset
func Allocate(propertyId uint64, expenseId uint64, owner identity.Identity) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}
	if owner.IsZero() {
		return 0, fault.ErrMissingParameters
	}

	trx := storage.NewDBTransaction()

	packed := trx.Get(globalData.expensePool, records.ExpenseKey(propertyId, expenseId))
	if nil == packed {
		trx.Abort()
		return 0, fault.ErrExpenseNotFound
	}
	expenseRecord, err := records.Packed(packed).UnpackExpense()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	packed = trx.Get(globalData.sharePool, records.ShareKey(propertyId, owner))
	if nil == packed {
		trx.Abort()
		return 0, fault.ErrShareNotFound
	}
	shareRecord, err := records.Packed(packed).UnpackShare()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	if !expenseRecord.Distributed {
		trx.Abort()
		return 0, fault.ErrExpenseNotDistributed
	}

	amountDue := proportion(expenseRecord.Amount, shareRecord.Percentage)

	record := records.AllocationRecord{
		AmountDue:   amountDue,
		Paid:        false,
		PaymentDate: 0,
	}
	trx.Put(globalData.pool, records.AllocationKey(propertyId, expenseId, owner), record.Pack())

	if err := trx.Commit(); nil != err {
		return 0, err
	}

	globalData.log.Infof("allocated: property: %d  expense: %d  owner: %s  due: %d", propertyId, expenseId, owner, amountDue)
	return amountDue, nil
}

// RecordPayment - mark the caller's own allocation as settled
func RecordPayment(caller identity.Identity, propertyId uint64, expenseId uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if caller.IsZero() {
		return fault.ErrMissingParameters
	}

	key := records.AllocationKey(propertyId, expenseId, caller)

	trx := storage.NewDBTransaction()

	packed := trx.Get(globalData.pool, key)
	if nil == packed {
		trx.Abort()
		return fault.ErrAllocationNotFound
	}
	record, err := records.Packed(packed).UnpackAllocation()
	if nil != err {
		trx.Abort()
		return err
	}
	if record.Paid {
		trx.Abort()
		return fault.ErrAllocationAlreadyPaid
	}

	record.Paid = true
	record.PaymentDate = uint64(time.Now().Unix())
	trx.Put(globalData.pool, key, record.Pack())

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("payment recorded: property: %d  expense: %d  owner: %s", propertyId, expenseId, caller)
	return nil
}

// Get - fetch one owner's allocation for an expense
func Get(propertyId uint64, expenseId uint64, owner identity.Identity) (*records.AllocationRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	packed := globalData.pool.Get(records.AllocationKey(propertyId, expenseId, owner))
	if nil == packed {
		return nil, fault.ErrAllocationNotFound
	}

	return records.Packed(packed).UnpackAllocation()
}
