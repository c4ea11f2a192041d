// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/allocation"
	"github.com/bitmark-inc/propertyd/expense"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/lease"
	"github.com/bitmark-inc/propertyd/mode"
	"github.com/bitmark-inc/propertyd/network"
	"github.com/bitmark-inc/propertyd/share"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/tenant"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"
)

func setup(t *testing.T) identity.Identity {
	removeFiles()

	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger setup failed: %s", err)
	}

	if err := mode.Initialise(network.Local); nil != err {
		t.Fatalf("mode setup failed: %s", err)
	}

	if err := storage.Initialise(databaseFileName, storage.ReadWrite); nil != err {
		t.Fatalf("storage setup failed: %s", err)
	}

	contractOwner, err := identity.New()
	if nil != err {
		t.Fatalf("identity setup failed: %s", err)
	}

	if err := admin.Initialise(storage.Pool.Admin, contractOwner); nil != err {
		t.Fatalf("admin setup failed: %s", err)
	}
	if err := share.Initialise(storage.Pool.Shares); nil != err {
		t.Fatalf("share setup failed: %s", err)
	}
	if err := expense.Initialise(storage.Pool.Expenses); nil != err {
		t.Fatalf("expense setup failed: %s", err)
	}
	if err := allocation.Initialise(storage.Pool.Allocations, storage.Pool.Expenses, storage.Pool.Shares); nil != err {
		t.Fatalf("allocation setup failed: %s", err)
	}
	if err := tenant.Initialise(storage.Pool.Tenants); nil != err {
		t.Fatalf("tenant setup failed: %s", err)
	}
	if err := lease.Initialise(storage.Pool.Leases, storage.Pool.RentPayments); nil != err {
		t.Fatalf("lease setup failed: %s", err)
	}

	mode.Set(mode.Normal)

	return contractOwner
}

func teardown(t *testing.T) {
	_ = lease.Finalise()
	_ = tenant.Finalise()
	_ = allocation.Finalise()
	_ = expense.Finalise()
	_ = share.Finalise()
	_ = admin.Finalise()
	_ = storage.Finalise()
	_ = mode.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(databaseFileName)
	_ = os.RemoveAll(testingDirName)
}

func TestShareHandler(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	handler := newShare(logger.New("test-share"))
	owner, _ := identity.New()

	var registerReply ShareRegisterReply
	err := handler.Register(&ShareRegisterArguments{
		Caller:     contractOwner,
		PropertyId: 1,
		Owner:      owner,
		Percentage: 40,
	}, &registerReply)
	assert.Nil(t, err, "register failed")
	assert.Equal(t, uint64(40), registerReply.Record.Percentage, "wrong percentage")

	var getReply ShareGetReply
	err = handler.Get(&ShareGetArguments{PropertyId: 1, Owner: owner}, &getReply)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, uint64(40), getReply.Record.Percentage, "wrong percentage")

	// rpc surface returns the same faults as the registry
	stranger, _ := identity.New()
	err = handler.Register(&ShareRegisterArguments{
		Caller:     stranger,
		PropertyId: 1,
		Owner:      owner,
		Percentage: 40,
	}, &registerReply)
	assert.Equal(t, fault.ErrNotAuthorized, err, "stranger registered another owner's share")
}

func TestExpenseAndAllocationHandlers(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	shareHandler := newShare(logger.New("test-share"))
	expenseHandler := newExpense(logger.New("test-expense"))
	allocationHandler := newAllocation(logger.New("test-allocation"))

	owner, _ := identity.New()

	var shareReply ShareRegisterReply
	err := shareHandler.Register(&ShareRegisterArguments{
		Caller:     contractOwner,
		PropertyId: 1,
		Owner:      owner,
		Percentage: 50,
	}, &shareReply)
	assert.Nil(t, err, "register failed")

	var recordReply ExpenseRecordReply
	err = expenseHandler.Record(&ExpenseRecordArguments{
		Caller:      owner,
		PropertyId:  1,
		ExpenseId:   10,
		Description: "roof repair",
		Amount:      5000,
		Category:    "maintenance",
	}, &recordReply)
	assert.Nil(t, err, "record failed")
	assert.False(t, recordReply.Record.Distributed, "new expense already distributed")

	var allocateReply AllocationAllocateReply
	err = allocationHandler.Allocate(&AllocationAllocateArguments{
		PropertyId: 1,
		ExpenseId:  10,
		Owner:      owner,
	}, &allocateReply)
	assert.Equal(t, fault.ErrExpenseNotDistributed, err, "allocated an undistributed expense")

	var distributeReply ExpenseDistributeReply
	err = expenseHandler.Distribute(&ExpenseDistributeArguments{
		PropertyId: 1,
		ExpenseId:  10,
	}, &distributeReply)
	assert.Nil(t, err, "distribute failed")
	assert.True(t, distributeReply.Distributed, "flag not set")

	err = allocationHandler.Allocate(&AllocationAllocateArguments{
		PropertyId: 1,
		ExpenseId:  10,
		Owner:      owner,
	}, &allocateReply)
	assert.Nil(t, err, "allocate failed")
	assert.Equal(t, uint64(2500), allocateReply.AmountDue, "wrong amount due")

	var payReply AllocationPayReply
	err = allocationHandler.Pay(&AllocationPayArguments{
		Caller:     owner,
		PropertyId: 1,
		ExpenseId:  10,
	}, &payReply)
	assert.Nil(t, err, "pay failed")
	assert.True(t, payReply.Record.Paid, "payment not recorded")
}

func TestHandlersRejectStartingMode(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	mode.Set(mode.Starting)

	handler := newShare(logger.New("test-share"))
	owner, _ := identity.New()

	var reply ShareRegisterReply
	err := handler.Register(&ShareRegisterArguments{
		Caller:     contractOwner,
		PropertyId: 1,
		Owner:      owner,
		Percentage: 40,
	}, &reply)
	assert.Equal(t, fault.ErrNotAvailableDuringStartup, err, "served during startup")
}

func TestNodeInfo(t *testing.T) {
	setup(t)
	defer teardown(t)

	server := createRPCServer(logger.New("test-node"), "1.0.0")
	assert.NotNil(t, server, "no server")

	handler := newNode(logger.New("test-node"), time.Now(), "1.0.0")

	var reply NodeInfoReply
	err := handler.Info(&NodeInfoArguments{}, &reply)
	assert.Nil(t, err, "info failed")
	assert.Equal(t, network.Local, reply.Network, "wrong network")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, "1.0.0", reply.Version, "wrong version")
}

// serve one json rpc call through the listener connection handler
func TestCallbackServesConnection(t *testing.T) {
	setup(t)
	defer teardown(t)

	log := logger.New("test-callback")
	argument := &serverArgument{
		Log:    log,
		Server: createRPCServer(log, "1.0.0"),
	}

	serverEnd, clientEnd := net.Pipe()

	var cb listener.Callback = callback
	go cb(serverEnd, argument)

	client := jsonrpc.NewClient(clientEnd)
	defer client.Close()

	var reply NodeInfoReply
	err := client.Call("Node.Info", &NodeInfoArguments{}, &reply)
	assert.Nil(t, err, "call failed")
	assert.Equal(t, "1.0.0", reply.Version, "wrong version")
	assert.Equal(t, network.Local, reply.Network, "wrong network")
}
