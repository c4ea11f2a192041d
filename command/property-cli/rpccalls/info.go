// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/rpc"
)

// GetInfo - fetch the server status
func (c *Client) GetInfo() (*rpc.NodeInfoReply, error) {
	var reply rpc.NodeInfoReply
	err := c.call("Node.Info", &rpc.NodeInfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
