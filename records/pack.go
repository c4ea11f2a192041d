// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"github.com/bitmark-inc/propertyd/identity"
)

func appendVarint(buffer []byte, value uint64) []byte {
	return append(buffer, toVarint64(value)...)
}

func appendString(buffer []byte, s string) []byte {
	buffer = appendVarint(buffer, uint64(len(s)))
	return append(buffer, s...)
}

func appendIdentity(buffer []byte, id identity.Identity) []byte {
	return append(buffer, id[:]...)
}

func appendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

// Pack - byte form of a share record
func (r *ShareRecord) Pack() Packed {
	buffer := make([]byte, 0, 3*varint64MaximumBytes)
	buffer = appendVarint(buffer, r.Percentage)
	buffer = appendVarint(buffer, r.UpdatedAt)
	buffer = appendVarint(buffer, r.Sequence)
	return buffer
}

// Pack - byte form of an expense record
func (r *ExpenseRecord) Pack() Packed {
	buffer := make([]byte, 0, len(r.Description)+len(r.Category)+identity.Size+5*varint64MaximumBytes)
	buffer = appendString(buffer, r.Description)
	buffer = appendVarint(buffer, r.Amount)
	buffer = appendVarint(buffer, r.Date)
	buffer = appendString(buffer, r.Category)
	buffer = appendIdentity(buffer, r.PaidBy)
	buffer = appendBool(buffer, r.Distributed)
	return buffer
}

// Pack - byte form of an allocation record
func (r *AllocationRecord) Pack() Packed {
	buffer := make([]byte, 0, 1+2*varint64MaximumBytes)
	buffer = appendVarint(buffer, r.AmountDue)
	buffer = appendBool(buffer, r.Paid)
	buffer = appendVarint(buffer, r.PaymentDate)
	return buffer
}

// Pack - byte form of a tenant record
func (r *TenantRecord) Pack() Packed {
	buffer := make([]byte, 0, identity.Size+len(r.Name)+2*varint64MaximumBytes)
	buffer = appendIdentity(buffer, r.Identity)
	buffer = appendString(buffer, r.Name)
	buffer = appendVarint(buffer, r.RegisteredAt)
	return buffer
}

// Pack - byte form of a lease record
func (r *LeaseRecord) Pack() Packed {
	buffer := make([]byte, 0, identity.Size+5*varint64MaximumBytes)
	buffer = appendVarint(buffer, r.TenantId)
	buffer = appendIdentity(buffer, r.Tenant)
	buffer = appendVarint(buffer, r.MonthlyRent)
	buffer = appendVarint(buffer, r.StartDate)
	buffer = appendVarint(buffer, r.EndDate)
	buffer = appendVarint(buffer, r.CreatedAt)
	return buffer
}

// Pack - byte form of a rent record
func (r *RentRecord) Pack() Packed {
	buffer := make([]byte, 0, 2*varint64MaximumBytes)
	buffer = appendVarint(buffer, r.Amount)
	buffer = appendVarint(buffer, r.PaidAt)
	return buffer
}
