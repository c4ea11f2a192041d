// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/records"
)

func makeIdentity(t *testing.T) identity.Identity {
	id, err := identity.New()
	assert.NoError(t, err, "generate identity")
	return id
}

func TestExpenseRecordRoundTrip(t *testing.T) {
	recorder := makeIdentity(t)

	r := &records.ExpenseRecord{
		Description: "roof repair after storm",
		Amount:      125000,
		Date:        1581020400,
		Category:    "maintenance",
		PaidBy:      recorder,
		Distributed: false,
	}

	unpacked, err := r.Pack().UnpackExpense()
	assert.NoError(t, err, "unpack")
	assert.Equal(t, r, unpacked, "round trip")

	r.Distributed = true
	unpacked, err = r.Pack().UnpackExpense()
	assert.NoError(t, err, "unpack distributed")
	assert.True(t, unpacked.Distributed, "distributed flag")
}

func TestShareRecordRoundTrip(t *testing.T) {
	r := &records.ShareRecord{
		Percentage: 45,
		UpdatedAt:  1581020400,
		Sequence:   17,
	}

	unpacked, err := r.Pack().UnpackShare()
	assert.NoError(t, err, "unpack")
	assert.Equal(t, r, unpacked, "round trip")
}

func TestAllocationRecordRoundTrip(t *testing.T) {
	r := &records.AllocationRecord{
		AmountDue:   56250,
		Paid:        true,
		PaymentDate: 1581106800,
	}

	unpacked, err := r.Pack().UnpackAllocation()
	assert.NoError(t, err, "unpack")
	assert.Equal(t, r, unpacked, "round trip")
}

func TestLeaseRecordRoundTrip(t *testing.T) {
	tenant := makeIdentity(t)

	r := &records.LeaseRecord{
		TenantId:    9,
		Tenant:      tenant,
		MonthlyRent: 250000,
		StartDate:   1577836800,
		EndDate:     1609459200,
		CreatedAt:   1577750400,
	}

	unpacked, err := r.Pack().UnpackLease()
	assert.NoError(t, err, "unpack")
	assert.Equal(t, r, unpacked, "round trip")
}

func TestUnpackTruncatedRecord(t *testing.T) {
	recorder := makeIdentity(t)

	r := &records.ExpenseRecord{
		Description: "window cleaning",
		Amount:      4200,
		Date:        1581020400,
		Category:    "services",
		PaidBy:      recorder,
	}

	packed := r.Pack()
	for _, n := range []int{0, 1, len(packed) / 2, len(packed) - 1} {
		_, err := packed[:n].UnpackExpense()
		assert.Equal(t, fault.ErrRecordCorrupted, err, "truncated at %d", n)
	}
}

func TestUnpackTrailingGarbage(t *testing.T) {
	r := &records.ShareRecord{
		Percentage: 100,
		UpdatedAt:  1,
		Sequence:   2,
	}

	packed := append(r.Pack(), 0xff)
	_, err := packed.UnpackShare()
	assert.Equal(t, fault.ErrRecordCorrupted, err, "trailing bytes must fail")
}

func TestKeysAreDistinct(t *testing.T) {
	owner := makeIdentity(t)

	assert.NotEqual(t,
		records.ExpenseKey(1, 2),
		records.ExpenseKey(2, 1),
		"key components must not collide")

	assert.Equal(t, 8+identity.Size, len(records.ShareKey(1, owner)), "share key size")
	assert.Equal(t, 16+identity.Size, len(records.AllocationKey(1, 2, owner)), "allocation key size")
	assert.Equal(t, 24, len(records.RentKey(1, 2, 202001)), "rent key size")
}
