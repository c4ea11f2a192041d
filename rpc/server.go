// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC interface to the property record contracts
//
// Clients connect over TLS and speak the net/rpc json codec.  Every
// mutating call carries the caller identity in its arguments; the
// server performs no signature checks, authorization is purely by
// identity value as on the chain itself.
package rpc

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
)

// build the served object set
func createRPCServer(log *logger.L, version string) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(newAdmin(log))
	_ = server.Register(newShare(log))
	_ = server.Register(newExpense(log))
	_ = server.Register(newAllocation(log))
	_ = server.Register(newTenant(log))
	_ = server.Register(newLease(log))
	_ = server.Register(newNode(log, start, version))

	return server
}
