// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON RPC calls to a propertyd server
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connection streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a propertyd
//
// the server uses a self signed certificate so verification is
// disabled; the caller is expected to check the fingerprint out of
// band
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the propertyd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// perform one call, tracing it when verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		c.printJson("arguments: "+method, arguments)
	}
	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}
	if c.verbose {
		c.printJson("reply: "+method, reply)
	}
	return nil
}

func (c *Client) printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: only enable verbose for json marshalable objects: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s: %s\n", title, b)
}
