// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
)

// sequential field reader over a packed buffer
//
// the failed flag is sticky: once any field is truncated all
// following reads return zero values and finish reports the error
type unpacker struct {
	buffer []byte
	offset int
	failed bool
}

func (u *unpacker) number() uint64 {
	if u.failed {
		return 0
	}
	value, count := fromVarint64(u.buffer[u.offset:])
	if 0 == count {
		u.failed = true
		return 0
	}
	u.offset += count
	return value
}

func (u *unpacker) text() string {
	length := int(u.number())
	if u.failed || u.offset+length > len(u.buffer) {
		u.failed = true
		return ""
	}
	s := string(u.buffer[u.offset : u.offset+length])
	u.offset += length
	return s
}

func (u *unpacker) identity() identity.Identity {
	var id identity.Identity
	if u.failed || u.offset+identity.Size > len(u.buffer) {
		u.failed = true
		return id
	}
	copy(id[:], u.buffer[u.offset:u.offset+identity.Size])
	u.offset += identity.Size
	return id
}

func (u *unpacker) boolean() bool {
	if u.failed || u.offset+1 > len(u.buffer) {
		u.failed = true
		return false
	}
	b := u.buffer[u.offset]
	u.offset += 1
	return 0 != b
}

func (u *unpacker) finish() error {
	if u.failed || u.offset != len(u.buffer) {
		return fault.ErrRecordCorrupted
	}
	return nil
}

// UnpackShare - decode a packed share record
func (p Packed) UnpackShare() (*ShareRecord, error) {
	u := &unpacker{buffer: p}
	r := &ShareRecord{
		Percentage: u.number(),
		UpdatedAt:  u.number(),
		Sequence:   u.number(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return r, nil
}

// UnpackExpense - decode a packed expense record
func (p Packed) UnpackExpense() (*ExpenseRecord, error) {
	u := &unpacker{buffer: p}
	r := &ExpenseRecord{
		Description: u.text(),
		Amount:      u.number(),
		Date:        u.number(),
		Category:    u.text(),
		PaidBy:      u.identity(),
		Distributed: u.boolean(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return r, nil
}

// UnpackAllocation - decode a packed allocation record
func (p Packed) UnpackAllocation() (*AllocationRecord, error) {
	u := &unpacker{buffer: p}
	r := &AllocationRecord{
		AmountDue:   u.number(),
		Paid:        u.boolean(),
		PaymentDate: u.number(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return r, nil
}

// UnpackTenant - decode a packed tenant record
func (p Packed) UnpackTenant() (*TenantRecord, error) {
	u := &unpacker{buffer: p}
	r := &TenantRecord{
		Identity:     u.identity(),
		Name:         u.text(),
		RegisteredAt: u.number(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return r, nil
}

// UnpackLease - decode a packed lease record
func (p Packed) UnpackLease() (*LeaseRecord, error) {
	u := &unpacker{buffer: p}
	r := &LeaseRecord{
		TenantId:    u.number(),
		Tenant:      u.identity(),
		MonthlyRent: u.number(),
		StartDate:   u.number(),
		EndDate:     u.number(),
		CreatedAt:   u.number(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return r, nil
}

// UnpackRent - decode a packed rent record
func (p Packed) UnpackRent() (*RentRecord, error) {
	u := &unpacker{buffer: p}
	r := &RentRecord{
		Amount: u.number(),
		PaidAt: u.number(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return r, nil
}
