// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runCreateLease(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateLease(
		caller,
		c.Uint64("property"),
		c.Uint64("lease"),
		c.Uint64("tenant"),
		c.Uint64("rent"),
		c.Uint64("start"),
		c.Uint64("end"),
	)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runPayRent(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := callerIdentity(m)
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.PayRent(
		caller,
		c.Uint64("property"),
		c.Uint64("lease"),
		c.Uint64("period"),
		c.Uint64("amount"),
	)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runLease(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetLease(c.Uint64("property"), c.Uint64("lease"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRent(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetRent(c.Uint64("property"), c.Uint64("lease"), c.Uint64("period"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
