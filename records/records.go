// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"github.com/bitmark-inc/propertyd/identity"
)

// Packed - packed byte form of any record
type Packed []byte

// ShareRecord - an owner's percentage stake in a property
//
// re-registration overwrites the whole record, no history is kept
type ShareRecord struct {
	Percentage uint64 `json:"percentage"`
	UpdatedAt  uint64 `json:"updatedAt"`
	Sequence   uint64 `json:"sequence"`
}

// ExpenseRecord - a cost incurred against a property
//
// created once, only the distributed flag is ever changed and the
// change is one way
type ExpenseRecord struct {
	Description string            `json:"description"`
	Amount      uint64            `json:"amount"`
	Date        uint64            `json:"date"`
	Category    string            `json:"category"`
	PaidBy      identity.Identity `json:"paidBy"`
	Distributed bool              `json:"distributed"`
}

// AllocationRecord - a per-owner liability for a distributed expense
//
// PaymentDate is zero until the allocation is paid
type AllocationRecord struct {
	AmountDue   uint64 `json:"amountDue"`
	Paid        bool   `json:"paid"`
	PaymentDate uint64 `json:"paymentDate"`
}

// TenantRecord - a tenant directory entry
type TenantRecord struct {
	Identity     identity.Identity `json:"identity"`
	Name         string            `json:"name"`
	RegisteredAt uint64            `json:"registeredAt"`
}

// LeaseRecord - a lease binding a tenant to a property
type LeaseRecord struct {
	TenantId    uint64            `json:"tenantId"`
	Tenant      identity.Identity `json:"tenant"`
	MonthlyRent uint64            `json:"monthlyRent"`
	StartDate   uint64            `json:"startDate"`
	EndDate     uint64            `json:"endDate"`
	CreatedAt   uint64            `json:"createdAt"`
}

// RentRecord - a logged rent payment for one period of a lease
type RentRecord struct {
	Amount uint64 `json:"amount"`
	PaidAt uint64 `json:"paidAt"`
}
