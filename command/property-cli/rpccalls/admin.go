// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/rpc"
)

// GetOwner - fetch the current contract owner
func (c *Client) GetOwner() (*rpc.AdminOwnerReply, error) {
	var reply rpc.AdminOwnerReply
	err := c.call("Admin.Owner", &rpc.AdminOwnerArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferOwner - hand the contract over to a new owner
func (c *Client) TransferOwner(caller identity.Identity, newOwner identity.Identity) (*rpc.AdminTransferReply, error) {
	arguments := rpc.AdminTransferArguments{
		Caller:   caller,
		NewOwner: newOwner,
	}

	var reply rpc.AdminTransferReply
	err := c.call("Admin.Transfer", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
