// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package expense - the property expense ledger
//
// Expenses are append-only: a recorded expense is never changed or
// removed, only its distributed flag can move and only from false to
// true.  The flag gates the allocation engine.
package expense

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
	log  *logger.L
	pool storage.Handle

	// set once during initialise
	initialised bool
}

// Initialise - connect the ledger to its pool
func Initialise(pool storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("expense")
	globalData.log.Info("starting…")
	globalData.pool = pool

	globalData.initialised = true
	return nil
}

// Finalise - shut down the ledger
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

// Record - append a new expense to a property's ledger
//
// the expense id is chosen by the caller; the first writer wins and a
// duplicate id is rejected without touching the stored record
func Record(caller identity.Identity, propertyId uint64, expenseId uint64, description string, amount uint64, category string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if caller.IsZero() {
		return fault.ErrMissingParameters
	}

	key := records.ExpenseKey(propertyId, expenseId)

	trx := storage.NewDBTransaction()

	if trx.Has(globalData.pool, key) {
		trx.Abort()
		return fault.ErrExpenseAlreadyExists
	}

	record := records.ExpenseRecord{
		Description: description,
		Amount:      amount,
		Date:        uint64(time.Now().Unix()),
		Category:    category,
		PaidBy:      caller,
		Distributed: false,
	}
	trx.Put(globalData.pool, key, record.Pack())

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("recorded expense: property: %d  expense: %d  amount: %d", propertyId, expenseId, amount)
	return nil
}

// Distribute - flip an expense's distributed flag
//
// the flag is one way: a second distribute on the same expense fails
// and leaves the record untouched
func Distribute(propertyId uint64, expenseId uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	key := records.ExpenseKey(propertyId, expenseId)

	trx := storage.NewDBTransaction()

	packed := trx.Get(globalData.pool, key)
	if nil == packed {
		trx.Abort()
		return fault.ErrExpenseNotFound
	}

	record, err := records.Packed(packed).UnpackExpense()
	if nil != err {
		trx.Abort()
		return err
	}
	if record.Distributed {
		trx.Abort()
		return fault.ErrExpenseAlreadyDistributed
	}

	record.Distributed = true
	trx.Put(globalData.pool, key, record.Pack())

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("distributed expense: property: %d  expense: %d", propertyId, expenseId)
	return nil
}

// Get - fetch one expense record
func Get(propertyId uint64, expenseId uint64) (*records.ExpenseRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	packed := globalData.pool.Get(records.ExpenseKey(propertyId, expenseId))
	if nil == packed {
		return nil, fault.ErrExpenseNotFound
	}

	return records.Packed(packed).UnpackExpense()
}
