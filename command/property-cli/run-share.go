// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRegisterShare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	owner, err := parseIdentity("owner", c.String("owner"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterShare(caller, c.Uint64("property"), owner, c.Uint64("percentage"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runShare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseIdentity("owner", c.String("owner"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetShare(c.Uint64("property"), owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
