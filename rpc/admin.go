// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/mode"
)

const (
	rateLimitAdmin = 200
	rateBurstAdmin = 100
)

// Admin - contract administration RPC
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func newAdmin(log *logger.L) *Admin {
	return &Admin{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
	}
}

// Admin.Owner
// -----------

// AdminOwnerArguments - no arguments
type AdminOwnerArguments struct {
}

// AdminOwnerReply - the current contract owner
type AdminOwnerReply struct {
	Owner identity.Identity `json:"owner"`
}

// Owner - fetch the current contract owner
func (t *Admin) Owner(arguments *AdminOwnerArguments, reply *AdminOwnerReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	reply.Owner = admin.ContractOwner()
	return nil
}

// Admin.Transfer
// --------------

// AdminTransferArguments - caller must be the current owner
type AdminTransferArguments struct {
	Caller   identity.Identity `json:"caller"`
	NewOwner identity.Identity `json:"newOwner"`
}

// AdminTransferReply - results of the ownership transfer
type AdminTransferReply struct {
	Owner identity.Identity `json:"owner"`
}

// Transfer - hand the contract over to a new owner
func (t *Admin) Transfer(arguments *AdminTransferArguments, reply *AdminTransferReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Admin.Transfer: %+v", arguments)

	if err := admin.Transfer(arguments.Caller, arguments.NewOwner); nil != err {
		return err
	}

	reply.Owner = admin.ContractOwner()
	return nil
}
