// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertyd/identity"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := identity.New()
	if nil != err {
		return err
	}

	printJson(m.w, map[string]string{
		"identity": id.String(),
	})
	return nil
}
