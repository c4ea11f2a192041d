// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/propertyd/identity"

	"github.com/bitmark-inc/propertyd/command/property-cli/rpccalls"
)

// open an RPC connection from the global options
func getClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// the global caller identity, required for mutating calls
func callerIdentity(m *metadata) (identity.Identity, error) {
	if "" == m.caller {
		return identity.Identity{}, fmt.Errorf("missing global option: --identity")
	}
	return parseIdentity("identity", m.caller)
}

// decode a base58 identity from a named option
func parseIdentity(name string, s string) (identity.Identity, error) {
	if "" == s {
		return identity.Identity{}, fmt.Errorf("missing option: --%s", name)
	}
	id, err := identity.FromBase58(s)
	if nil != err {
		return identity.Identity{}, fmt.Errorf("option: --%s: %q error: %s", name, s, err)
	}
	return id, nil
}
