// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lease - leases and rent payment logging
//
// A lease binds a registered tenant to a property.  Rent payments are
// logged per period and only the lease's own tenant may log them.
package lease

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/records"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/tenant"
)

// globals
var globalData struct {
	sync.RWMutex
	log      *logger.L
	pool     storage.Handle
	rentPool storage.Handle

	// set once during initialise
	initialised bool
}

// Initialise - connect the engine to its pools
func Initialise(pool storage.Handle, rentPool storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("lease")
	globalData.log.Info("starting…")
	globalData.pool = pool
	globalData.rentPool = rentPool

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

// Create - open a lease for a registered tenant
//
// contract owner only; the tenant id must already exist in the
// directory and a lease id can never be reused
func Create(caller identity.Identity, propertyId uint64, leaseId uint64, tenantId uint64, monthlyRent uint64, startDate uint64, endDate uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if !admin.IsOwner(caller) {
		return fault.ErrNotAuthorized
	}
	if 0 == monthlyRent || endDate <= startDate {
		return fault.ErrMissingParameters
	}

	tenantIdentity, err := tenant.Resolve(tenantId)
	if nil != err {
		return err
	}

	key := records.LeaseKey(propertyId, leaseId)

	trx := storage.NewDBTransaction()

	if trx.Has(globalData.pool, key) {
		trx.Abort()
		return fault.ErrLeaseAlreadyExists
	}

	record := records.LeaseRecord{
		TenantId:    tenantId,
		Tenant:      tenantIdentity,
		MonthlyRent: monthlyRent,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   uint64(time.Now().Unix()),
	}
	trx.Put(globalData.pool, key, record.Pack())

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("created lease: property: %d  lease: %d  tenant: %d  rent: %d", propertyId, leaseId, tenantId, monthlyRent)
	return nil
}

// RecordRent - log a rent payment for one period of a lease
//
// only the lease's tenant may log a payment and each period can be
// logged exactly once
func RecordRent(caller identity.Identity, propertyId uint64, leaseId uint64, period uint64, amount uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if caller.IsZero() {
		return fault.ErrMissingParameters
	}

	trx := storage.NewDBTransaction()

	packed := trx.Get(globalData.pool, records.LeaseKey(propertyId, leaseId))
	if nil == packed {
		trx.Abort()
		return fault.ErrLeaseNotFound
	}
	leaseRecord, err := records.Packed(packed).UnpackLease()
	if nil != err {
		trx.Abort()
		return err
	}
	if caller != leaseRecord.Tenant {
		trx.Abort()
		return fault.ErrNotLeaseTenant
	}

	rentKey := records.RentKey(propertyId, leaseId, period)
	if trx.Has(globalData.rentPool, rentKey) {
		trx.Abort()
		return fault.ErrRentAlreadyRecorded
	}

	record := records.RentRecord{
		Amount: amount,
		PaidAt: uint64(time.Now().Unix()),
	}
	trx.Put(globalData.rentPool, rentKey, record.Pack())

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("rent recorded: property: %d  lease: %d  period: %d  amount: %d", propertyId, leaseId, period, amount)
	return nil
}

// Get - fetch one lease record
func Get(propertyId uint64, leaseId uint64) (*records.LeaseRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	packed := globalData.pool.Get(records.LeaseKey(propertyId, leaseId))
	if nil == packed {
		return nil, fault.ErrLeaseNotFound
	}

	return records.Packed(packed).UnpackLease()
}

// GetRent - fetch the logged rent payment for one period
func GetRent(propertyId uint64, leaseId uint64, period uint64) (*records.RentRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	packed := globalData.rentPool.Get(records.RentKey(propertyId, leaseId, period))
	if nil == packed {
		return nil, fault.ErrRentNotFound
	}

	return records.Packed(packed).UnpackRent()
}
