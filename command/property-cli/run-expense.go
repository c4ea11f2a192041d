// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRecordExpense(c *cli.Context) error {

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

	response, err := client.RecordExpense(
		caller,
		c.Uint64("property"),
		c.Uint64("expense"),
		c.String("description"),
		c.Uint64("amount"),
		c.String("category"),
	)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runDistribute(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.DistributeExpense(c.Uint64("property"), c.Uint64("expense"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runExpense(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetExpense(c.Uint64("property"), c.Uint64("expense"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
