// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRegisterTenant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	tenantIdentity, err := parseIdentity("tenant-identity", c.String("tenant-identity"))
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterTenant(caller, c.Uint64("tenant"), tenantIdentity, c.String("name"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTenant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetTenant(c.Uint64("tenant"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
