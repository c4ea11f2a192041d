// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/rpc"
)

// Allocate - compute and store an owner's part of a distributed expense
func (c *Client) Allocate(propertyId uint64, expenseId uint64, owner identity.Identity) (*rpc.AllocationAllocateReply, error) {
	arguments := rpc.AllocationAllocateArguments{
		PropertyId: propertyId,
		ExpenseId:  expenseId,
		Owner:      owner,
	}

	var reply rpc.AllocationAllocateReply
	err := c.call("Allocation.Allocate", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// PayAllocation - mark the caller's allocation as settled
func (c *Client) PayAllocation(caller identity.Identity, propertyId uint64, expenseId uint64) (*rpc.AllocationPayReply, error) {
	arguments := rpc.AllocationPayArguments{
		Caller:     caller,
		PropertyId: propertyId,
		ExpenseId:  expenseId,
	}

	var reply rpc.AllocationPayReply
	err := c.call("Allocation.Pay", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAllocation - fetch one owner's allocation for an expense
func (c *Client) GetAllocation(propertyId uint64, expenseId uint64, owner identity.Identity) (*rpc.AllocationGetReply, error) {
	arguments := rpc.AllocationGetArguments{
		PropertyId: propertyId,
		ExpenseId:  expenseId,
		Owner:      owner,
	}

	var reply rpc.AllocationGetReply
	err := c.call("Allocation.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
