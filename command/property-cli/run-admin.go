// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runOwner(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetOwner()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	newOwner, err := parseIdentity("new-owner", c.String("new-owner"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferOwner(caller, newOwner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
