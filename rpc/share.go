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
	"github.com/bitmark-inc/propertyd/share"
)

const (
	rateLimitShare = 200
	rateBurstShare = 100
)

// Share - ownership share RPC
type Share struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func newShare(log *logger.L) *Share {
	return &Share{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitShare, rateBurstShare),
	}
}

// Share.Register
// --------------

// ShareRegisterArguments - caller must be the contract owner or the stake owner
type ShareRegisterArguments struct {
	Caller     identity.Identity `json:"caller"`
	PropertyId uint64            `json:"propertyId"`
	Owner      identity.Identity `json:"owner"`
	Percentage uint64            `json:"percentage"`
}

// ShareRegisterReply - the stored stake
type ShareRegisterReply struct {
	Record records.ShareRecord `json:"record"`
}

// Register - store an owner's percentage stake in a property
func (t *Share) Register(arguments *ShareRegisterArguments, reply *ShareRegisterReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Share.Register: %+v", arguments)

	err := share.Register(arguments.Caller, arguments.PropertyId, arguments.Owner, arguments.Percentage)
	if nil != err {
		return err
	}

	record, err := share.Get(arguments.PropertyId, arguments.Owner)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}

// Share.Get
// ---------

// ShareGetArguments - select one stake
type ShareGetArguments struct {
	PropertyId uint64            `json:"propertyId"`
	Owner      identity.Identity `json:"owner"`
}

// ShareGetReply - the stored stake
type ShareGetReply struct {
	Record records.ShareRecord `json:"record"`
}

// Get - fetch an owner's stake in a property
func (t *Share) Get(arguments *ShareGetArguments, reply *ShareGetReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	record, err := share.Get(arguments.PropertyId, arguments.Owner)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}
