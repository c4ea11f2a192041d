// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"encoding/binary"

	"github.com/bitmark-inc/propertyd/identity"
)

// fixed layout keys for the storage pools

func appendUint64(buffer []byte, value uint64) []byte {
	scratch := make([]byte, 8)
	binary.BigEndian.PutUint64(scratch, value)
	return append(buffer, scratch...)
}

// ShareKey - key for one owner's share of a property
func ShareKey(propertyId uint64, owner identity.Identity) []byte {
	key := make([]byte, 0, 8+identity.Size)
	key = appendUint64(key, propertyId)
	return append(key, owner[:]...)
}

// ExpenseKey - key for one expense of a property
func ExpenseKey(propertyId uint64, expenseId uint64) []byte {
	key := make([]byte, 0, 16)
	key = appendUint64(key, propertyId)
	return appendUint64(key, expenseId)
}

// AllocationKey - key for one owner's allocation of an expense
func AllocationKey(propertyId uint64, expenseId uint64, owner identity.Identity) []byte {
	key := make([]byte, 0, 16+identity.Size)
	key = appendUint64(key, propertyId)
	key = appendUint64(key, expenseId)
	return append(key, owner[:]...)
}

// TenantKey - key for a tenant directory entry
func TenantKey(tenantId uint64) []byte {
	return appendUint64(make([]byte, 0, 8), tenantId)
}

// LeaseKey - key for one lease of a property
func LeaseKey(propertyId uint64, leaseId uint64) []byte {
	key := make([]byte, 0, 16)
	key = appendUint64(key, propertyId)
	return appendUint64(key, leaseId)
}

// RentKey - key for one rent period of a lease
func RentKey(propertyId uint64, leaseId uint64, period uint64) []byte {
	key := make([]byte, 0, 24)
	key = appendUint64(key, propertyId)
	key = appendUint64(key, leaseId)
	return appendUint64(key, period)
}
