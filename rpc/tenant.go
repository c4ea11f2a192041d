// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/mode"
	"github.com/bitmark-inc/propertyd/records"
	"github.com/bitmark-inc/propertyd/tenant"
)

const (
	rateLimitTenant = 200
	rateBurstTenant = 100
)

// Tenant - tenant directory RPC
type Tenant struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func newTenant(log *logger.L) *Tenant {
	return &Tenant{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTenant, rateBurstTenant),
	}
}

// Tenant.Register
// ---------------

// TenantRegisterArguments - caller must be the contract owner
type TenantRegisterArguments struct {
	Caller   identity.Identity `json:"caller"`
	TenantId uint64            `json:"tenantId"`
	Identity identity.Identity `json:"identity"`
	Name     string            `json:"name"`
}

// TenantRegisterReply - the stored directory entry
type TenantRegisterReply struct {
	Record records.TenantRecord `json:"record"`
}

// Register - add a tenant to the directory
func (t *Tenant) Register(arguments *TenantRegisterArguments, reply *TenantRegisterReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Tenant.Register: %+v", arguments)

	err := tenant.Register(arguments.Caller, arguments.TenantId, arguments.Identity, arguments.Name)
	if nil != err {
		return err
	}

	record, err := tenant.Get(arguments.TenantId)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}

// Tenant.Get
// ----------

// TenantGetArguments - select one directory entry
type TenantGetArguments struct {
	TenantId uint64 `json:"tenantId"`
}

// TenantGetReply - the stored directory entry
type TenantGetReply struct {
	Record records.TenantRecord `json:"record"`
}

// Get - fetch a full tenant record
func (t *Tenant) Get(arguments *TenantGetArguments, reply *TenantGetReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	record, err := tenant.Get(arguments.TenantId)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}
