// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "property-cli"
	app.Usage = "command line client for propertyd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2150",
			Usage: " propertyd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " caller identity for mutating calls, `IDENTITY`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "print a fresh random identity",
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display propertyd status",
			Action: runInfo,
		},
		{
			Name:   "owner",
			Usage:  "display the contract owner",
			Action: runOwner,
		},
		{
			Name:      "transfer",
			Usage:     "transfer the contract to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "new-owner, o",
					Value: "",
					Usage: "*new contract owner `IDENTITY`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "register-share",
			Usage:     "register an owner's percentage stake in a property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*stake owner `IDENTITY`",
				},
				cli.Uint64Flag{
					Name:  "percentage, P",
					Value: 0,
					Usage: "*stake percentage 0..100 `NUMBER`",
				},
			},
			Action: runRegisterShare,
		},
		{
			Name:      "share",
			Usage:     "display an owner's stake in a property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*stake owner `IDENTITY`",
				},
			},
			Action: runShare,
		},
		{
			Name:      "record-expense",
			Usage:     "append an expense to a property's ledger",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				expenseFlag,
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*expense description `STRING`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*expense amount `NUMBER`",
				},
				cli.StringFlag{
					Name:  "category, g",
					Value: "",
					Usage: " expense category `STRING`",
				},
			},
			Action: runRecordExpense,
		},
		{
			Name:      "distribute",
			Usage:     "open an expense for allocation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				expenseFlag,
			},
			Action: runDistribute,
		},
		{
			Name:      "expense",
			Usage:     "display one expense record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				expenseFlag,
			},
			Action: runExpense,
		},
		{
			Name:      "allocate",
			Usage:     "compute and store an owner's part of a distributed expense",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				expenseFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*stake owner `IDENTITY`",
				},
			},
			Action: runAllocate,
		},
		{
			Name:      "pay",
			Usage:     "settle the caller's allocation of an expense",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				expenseFlag,
			},
			Action: runPay,
		},
		{
			Name:      "allocation",
			Usage:     "display one owner's allocation for an expense",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				expenseFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*stake owner `IDENTITY`",
				},
			},
			Action: runAllocation,
		},
		{
			Name:      "register-tenant",
			Usage:     "add a tenant to the directory",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tenantFlag,
				cli.StringFlag{
					Name:  "tenant-identity, T",
					Value: "",
					Usage: "*tenant `IDENTITY`",
				},
				cli.StringFlag{
					Name:  "name, m",
					Value: "",
					Usage: "*tenant display name `STRING`",
				},
			},
			Action: runRegisterTenant,
		},
		{
			Name:      "tenant",
			Usage:     "display a tenant directory entry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tenantFlag,
			},
			Action: runTenant,
		},
		{
			Name:      "create-lease",
			Usage:     "open a lease for a registered tenant",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				leaseFlag,
				tenantFlag,
				cli.Uint64Flag{
					Name:  "rent, r",
					Value: 0,
					Usage: "*monthly rent `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: "*start date, unix seconds `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "end, E",
					Value: 0,
					Usage: "*end date, unix seconds `NUMBER`",
				},
			},
			Action: runCreateLease,
		},
		{
			Name:      "pay-rent",
			Usage:     "log a rent payment for one period of a lease",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				leaseFlag,
				periodFlag,
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*payment amount `NUMBER`",
				},
			},
			Action: runPayRent,
		},
		{
			Name:      "lease",
			Usage:     "display one lease record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				leaseFlag,
			},
			Action: runLease,
		},
		{
			Name:      "rent",
			Usage:     "display the logged rent payment for one period",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag,
				leaseFlag,
				periodFlag,
			},
			Action: runRent,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			caller:  c.GlobalString("identity"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// flags shared by several commands
var (
	propertyFlag = cli.Uint64Flag{
		Name:  "property, p",
		Value: 0,
		Usage: "*property record id `NUMBER`",
	}
	expenseFlag = cli.Uint64Flag{
		Name:  "expense, e",
		Value: 0,
		Usage: "*expense record id `NUMBER`",
	}
	tenantFlag = cli.Uint64Flag{
		Name:  "tenant, t",
		Value: 0,
		Usage: "*tenant directory id `NUMBER`",
	}
	leaseFlag = cli.Uint64Flag{
		Name:  "lease, l",
		Value: 0,
		Usage: "*lease record id `NUMBER`",
	}
	periodFlag = cli.Uint64Flag{
		Name:  "period, P",
		Value: 0,
		Usage: "*rent period e.g. 202007 `NUMBER`",
	}
)
