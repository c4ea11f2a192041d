// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/rpc"
)

// RegisterShare - store an owner's percentage stake in a property
func (c *Client) RegisterShare(caller identity.Identity, propertyId uint64, owner identity.Identity, percentage uint64) (*rpc.ShareRegisterReply, error) {
	arguments := rpc.ShareRegisterArguments{
		Caller:     caller,
		PropertyId: propertyId,
		Owner:      owner,
		Percentage: percentage,
	}

	var reply rpc.ShareRegisterReply
	err := c.call("Share.Register", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetShare - fetch an owner's stake in a property
func (c *Client) GetShare(propertyId uint64, owner identity.Identity) (*rpc.ShareGetReply, error) {
	arguments := rpc.ShareGetArguments{
		PropertyId: propertyId,
		Owner:      owner,
	}

	var reply rpc.ShareGetReply
	err := c.call("Share.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
