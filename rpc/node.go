// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/mode"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - server status RPC
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	start   time.Time
	version string
}

func newNode(log *logger.L, start time.Time, version string) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		start:   start,
		version: version,
	}
}

// Node.Info
// ---------

// NodeInfoArguments - no arguments
type NodeInfoArguments struct {
}

// NodeInfoReply - server state
type NodeInfoReply struct {
	Network     string `json:"network"`
	Mode        string `json:"mode"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Connections uint64 `json:"connections"`
}

// Info - fetch the server status
func (t *Node) Info(arguments *NodeInfoArguments, reply *NodeInfoReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}

	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.Version = t.version
	reply.Uptime = time.Since(t.start).String()
	reply.Connections = connectionCount.Uint64()
	return nil
}
