// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/allocation"
	"github.com/bitmark-inc/propertyd/expense"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/lease"
	"github.com/bitmark-inc/propertyd/mode"
	"github.com/bitmark-inc/propertyd/rpc"
	"github.com/bitmark-inc/propertyd/share"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/tenant"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before anything else is started
	err = mode.Initialise(theConfiguration.Network)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// deployer identity only used on first start to seed the owner
	deployer := identity.Identity{}
	if "" != theConfiguration.ContractOwner {
		deployer, err = identity.FromBase58(theConfiguration.ContractOwner)
		if nil != err {
			log.Criticalf("contract owner: %q error: %s", theConfiguration.ContractOwner, err)
			exitwithstatus.Message("contract owner: %q error: %s", theConfiguration.ContractOwner, err)
		}
	}

	// contract owner singleton
	log.Info("initialise admin")
	err = admin.Initialise(storage.Pool.Admin, deployer)
	if nil != err {
		log.Criticalf("admin initialise error: %s", err)
		exitwithstatus.Message("admin initialise error: %s", err)
	}
	defer admin.Finalise()

	// record engines
	log.Info("initialise engines")
	err = share.Initialise(storage.Pool.Shares)
	if nil != err {
		log.Criticalf("share initialise error: %s", err)
		exitwithstatus.Message("share initialise error: %s", err)
	}
	defer share.Finalise()

	err = expense.Initialise(storage.Pool.Expenses)
	if nil != err {
		log.Criticalf("expense initialise error: %s", err)
		exitwithstatus.Message("expense initialise error: %s", err)
	}
	defer expense.Finalise()

	err = allocation.Initialise(storage.Pool.Allocations, storage.Pool.Expenses, storage.Pool.Shares)
	if nil != err {
		log.Criticalf("allocation initialise error: %s", err)
		exitwithstatus.Message("allocation initialise error: %s", err)
	}
	defer allocation.Finalise()

	err = tenant.Initialise(storage.Pool.Tenants)
	if nil != err {
		log.Criticalf("tenant initialise error: %s", err)
		exitwithstatus.Message("tenant initialise error: %s", err)
	}
	defer tenant.Finalise()

	err = lease.Initialise(storage.Pool.Leases, storage.Pool.RentPayments)
	if nil != err {
		log.Criticalf("lease initialise error: %s", err)
		exitwithstatus.Message("lease initialise error: %s", err)
	}
	defer lease.Finalise()

	// start up the rpc server
	err = rpc.Initialise(&theConfiguration.ClientRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// ready to serve
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
