// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/allocation"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/mode"
	"github.com/bitmark-inc/propertyd/records"
)

const (
	rateLimitAllocation = 200
	rateBurstAllocation = 100
)

// Allocation - expense allocation RPC
type Allocation struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func newAllocation(log *logger.L) *Allocation {
	return &Allocation{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAllocation, rateBurstAllocation),
	}
}

// Allocation.Allocate
// -------------------

// AllocationAllocateArguments - select a distributed expense and an owner
type AllocationAllocateArguments struct {
	PropertyId uint64            `json:"propertyId"`
	ExpenseId  uint64            `json:"expenseId"`
	Owner      identity.Identity `json:"owner"`
}

// AllocationAllocateReply - the owner's computed part
type AllocationAllocateReply struct {
	AmountDue uint64 `json:"amountDue"`
}

// Allocate - compute and store an owner's part of a distributed expense
func (t *Allocation) Allocate(arguments *AllocationAllocateArguments, reply *AllocationAllocateReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Allocation.Allocate: %+v", arguments)

	amountDue, err := allocation.Allocate(arguments.PropertyId, arguments.ExpenseId, arguments.Owner)
	if nil != err {
		return err
	}

	reply.AmountDue = amountDue
	return nil
}

// Allocation.Pay
// --------------

// AllocationPayArguments - the caller settles their own allocation
type AllocationPayArguments struct {
	Caller     identity.Identity `json:"caller"`
	PropertyId uint64            `json:"propertyId"`
	ExpenseId  uint64            `json:"expenseId"`
}

// AllocationPayReply - the settled allocation
type AllocationPayReply struct {
	Record records.AllocationRecord `json:"record"`
}

// Pay - mark the caller's allocation as settled
func (t *Allocation) Pay(arguments *AllocationPayArguments, reply *AllocationPayReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Allocation.Pay: %+v", arguments)

	err := allocation.RecordPayment(arguments.Caller, arguments.PropertyId, arguments.ExpenseId)
	if nil != err {
		return err
	}

	record, err := allocation.Get(arguments.PropertyId, arguments.ExpenseId, arguments.Caller)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}

// Allocation.Get
// --------------

// AllocationGetArguments - select one allocation
type AllocationGetArguments struct {
	PropertyId uint64            `json:"propertyId"`
	ExpenseId  uint64            `json:"expenseId"`
	Owner      identity.Identity `json:"owner"`
}

// AllocationGetReply - the stored allocation
type AllocationGetReply struct {
	Record records.AllocationRecord `json:"record"`
}

// Get - fetch one owner's allocation for an expense
func (t *Allocation) Get(arguments *AllocationGetArguments, reply *AllocationGetReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	record, err := allocation.Get(arguments.PropertyId, arguments.ExpenseId, arguments.Owner)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}
