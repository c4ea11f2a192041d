// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/lease"
	"github.com/bitmark-inc/propertyd/mode"
	"github.com/bitmark-inc/propertyd/records"
)

const (
	rateLimitLease = 200
	rateBurstLease = 100
)

// Lease - lease and rent RPC
type Lease struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func newLease(log *logger.L) *Lease {
	return &Lease{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLease, rateBurstLease),
	}
}

// Lease.Create
// ------------

// LeaseCreateArguments - caller must be the contract owner
type LeaseCreateArguments struct {
	Caller      identity.Identity `json:"caller"`
	PropertyId  uint64            `json:"propertyId"`
	LeaseId     uint64            `json:"leaseId"`
	TenantId    uint64            `json:"tenantId"`
	MonthlyRent uint64            `json:"monthlyRent"`
	StartDate   uint64            `json:"startDate"`
	EndDate     uint64            `json:"endDate"`
}

// LeaseCreateReply - the stored lease
type LeaseCreateReply struct {
	Record records.LeaseRecord `json:"record"`
}

// Create - open a lease for a registered tenant
func (t *Lease) Create(arguments *LeaseCreateArguments, reply *LeaseCreateReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Lease.Create: %+v", arguments)

	err := lease.Create(
		arguments.Caller,
		arguments.PropertyId,
		arguments.LeaseId,
		arguments.TenantId,
		arguments.MonthlyRent,
		arguments.StartDate,
		arguments.EndDate,
	)
	if nil != err {
		return err
	}

	record, err := lease.Get(arguments.PropertyId, arguments.LeaseId)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}

// Lease.Rent
// ----------

// LeaseRentArguments - caller must be the lease tenant
type LeaseRentArguments struct {
	Caller     identity.Identity `json:"caller"`
	PropertyId uint64            `json:"propertyId"`
	LeaseId    uint64            `json:"leaseId"`
	Period     uint64            `json:"period"`
	Amount     uint64            `json:"amount"`
}

// LeaseRentReply - the logged payment
type LeaseRentReply struct {
	Record records.RentRecord `json:"record"`
}

// Rent - log a rent payment for one period of a lease
func (t *Lease) Rent(arguments *LeaseRentArguments, reply *LeaseRentReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Lease.Rent: %+v", arguments)

	err := lease.RecordRent(
		arguments.Caller,
		arguments.PropertyId,
		arguments.LeaseId,
		arguments.Period,
		arguments.Amount,
	)
	if nil != err {
		return err
	}

	record, err := lease.GetRent(arguments.PropertyId, arguments.LeaseId, arguments.Period)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}

// Lease.Get
// ---------

// LeaseGetArguments - select one lease
type LeaseGetArguments struct {
	PropertyId uint64 `json:"propertyId"`
	LeaseId    uint64 `json:"leaseId"`
}

// LeaseGetReply - the stored lease
type LeaseGetReply struct {
	Record records.LeaseRecord `json:"record"`
}

// Get - fetch one lease record
func (t *Lease) Get(arguments *LeaseGetArguments, reply *LeaseGetReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	record, err := lease.Get(arguments.PropertyId, arguments.LeaseId)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}

// Lease.GetRent
// -------------

// LeaseGetRentArguments - select one rent period
type LeaseGetRentArguments struct {
	PropertyId uint64 `json:"propertyId"`
	LeaseId    uint64 `json:"leaseId"`
	Period     uint64 `json:"period"`
}

// LeaseGetRentReply - the logged payment
type LeaseGetRentReply struct {
	Record records.RentRecord `json:"record"`
}

// GetRent - fetch the logged rent payment for one period
func (t *Lease) GetRent(arguments *LeaseGetRentArguments, reply *LeaseGetRentReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	record, err := lease.GetRent(arguments.PropertyId, arguments.LeaseId, arguments.Period)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}
