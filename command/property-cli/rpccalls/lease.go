// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/rpc"
)

// CreateLease - open a lease for a registered tenant
func (c *Client) CreateLease(caller identity.Identity, propertyId uint64, leaseId uint64, tenantId uint64, monthlyRent uint64, startDate uint64, endDate uint64) (*rpc.LeaseCreateReply, error) {
	arguments := rpc.LeaseCreateArguments{
		Caller:      caller,
		PropertyId:  propertyId,
		LeaseId:     leaseId,
		TenantId:    tenantId,
		MonthlyRent: monthlyRent,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	var reply rpc.LeaseCreateReply
	err := c.call("Lease.Create", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// PayRent - log a rent payment for one period of a lease
func (c *Client) PayRent(caller identity.Identity, propertyId uint64, leaseId uint64, period uint64, amount uint64) (*rpc.LeaseRentReply, error) {
	arguments := rpc.LeaseRentArguments{
		Caller:     caller,
		PropertyId: propertyId,
		LeaseId:    leaseId,
		Period:     period,
		Amount:     amount,
	}

	var reply rpc.LeaseRentReply
	err := c.call("Lease.Rent", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetLease - fetch one lease record
func (c *Client) GetLease(propertyId uint64, leaseId uint64) (*rpc.LeaseGetReply, error) {
	arguments := rpc.LeaseGetArguments{
		PropertyId: propertyId,
		LeaseId:    leaseId,
	}

	var reply rpc.LeaseGetReply
	err := c.call("Lease.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetRent - fetch the logged rent payment for one period
func (c *Client) GetRent(propertyId uint64, leaseId uint64, period uint64) (*rpc.LeaseGetRentReply, error) {
	arguments := rpc.LeaseGetRentArguments{
		PropertyId: propertyId,
		LeaseId:    leaseId,
		Period:     period,
	}

	var reply rpc.LeaseGetRentReply
	err := c.call("Lease.GetRent", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
