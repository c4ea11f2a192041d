// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/rpc"
)

// RegisterTenant - add a tenant to the directory
func (c *Client) RegisterTenant(caller identity.Identity, tenantId uint64, tenantIdentity identity.Identity, name string) (*rpc.TenantRegisterReply, error) {
	arguments := rpc.TenantRegisterArguments{
		Caller:   caller,
		TenantId: tenantId,
		Identity: tenantIdentity,
		Name:     name,
	}

	var reply rpc.TenantRegisterReply
	err := c.call("Tenant.Register", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTenant - fetch a full tenant record
func (c *Client) GetTenant(tenantId uint64) (*rpc.TenantGetReply, error) {
	arguments := rpc.TenantGetArguments{
		TenantId: tenantId,
	}

	var reply rpc.TenantGetReply
	err := c.call("Tenant.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
