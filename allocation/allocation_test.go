// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocation_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/allocation"
	"github.com/bitmark-inc/propertyd/expense"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/share"
	"github.com/bitmark-inc/propertyd/storage"
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

	return contractOwner
}

func teardown(t *testing.T) {
	if err := allocation.Finalise(); nil != err {
		t.Errorf("allocation teardown failed: %s", err)
	}
	if err := expense.Finalise(); nil != err {
		t.Errorf("expense teardown failed: %s", err)
	}
	if err := share.Finalise(); nil != err {
		t.Errorf("share teardown failed: %s", err)
	}
	if err := admin.Finalise(); nil != err {
		t.Errorf("admin teardown failed: %s", err)
	}
	if err := storage.Finalise(); nil != err {
		t.Errorf("storage teardown failed: %s", err)
	}
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(databaseFileName)
	_ = os.RemoveAll(testingDirName)
}

func TestAllocateRequiresDistributedExpense(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	owner, _ := identity.New()
	err := share.Register(contractOwner, 1, owner, 25)
	assert.Nil(t, err, "register failed")

	_, err = allocation.Allocate(1, 10, owner)
	assert.Equal(t, fault.ErrExpenseNotFound, err, "allocated a missing expense")

	err = expense.Record(contractOwner, 1, 10, "roof repair", 5000, "maintenance")
	assert.Nil(t, err, "record failed")

	_, err = allocation.Allocate(1, 10, owner)
	assert.Equal(t, fault.ErrExpenseNotDistributed, err, "allocated an undistributed expense")

	err = expense.Distribute(1, 10)
	assert.Nil(t, err, "distribute failed")

	amountDue, err := allocation.Allocate(1, 10, owner)
	assert.Nil(t, err, "allocate failed")
	assert.Equal(t, uint64(1250), amountDue, "wrong amount due")
}

func TestAllocateRequiresShare(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	err := expense.Record(contractOwner, 1, 10, "roof repair", 5000, "maintenance")
	assert.Nil(t, err, "record failed")
	err = expense.Distribute(1, 10)
	assert.Nil(t, err, "distribute failed")

	stranger, _ := identity.New()
	_, err = allocation.Allocate(1, 10, stranger)
	assert.Equal(t, fault.ErrShareNotFound, err, "allocated without a share")

	_, err = allocation.Get(1, 10, stranger)
	assert.Equal(t, fault.ErrAllocationNotFound, err, "allocation stored anyway")
}

func TestAllocatedAmounts(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	owner, _ := identity.New()

	testCases := []struct {
		amount     uint64
		percentage uint64
		expected   uint64
	}{
		{5000, 25, 1250},
		{5000, 33, 1650},
		{1, 1, 0},
	}

	for i, testCase := range testCases {
		expenseId := uint64(100 + i)

		err := share.Register(contractOwner, 1, owner, testCase.percentage)
		assert.Nil(t, err, "register failed")
		err = expense.Record(contractOwner, 1, expenseId, "expense", testCase.amount, "misc")
		assert.Nil(t, err, "record failed")
		err = expense.Distribute(1, expenseId)
		assert.Nil(t, err, "distribute failed")

		amountDue, err := allocation.Allocate(1, expenseId, owner)
		assert.Nil(t, err, "allocate failed")
		assert.Equal(t, testCase.expected, amountDue, "case: %d", i)
	}
}

func TestPaymentLifecycle(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	owner, _ := identity.New()
	assert.Nil(t, share.Register(contractOwner, 1, owner, 50), "register failed")
	assert.Nil(t, expense.Record(contractOwner, 1, 10, "roof repair", 5000, "maintenance"), "record failed")
	assert.Nil(t, expense.Distribute(1, 10), "distribute failed")

	amountDue, err := allocation.Allocate(1, 10, owner)
	assert.Nil(t, err, "allocate failed")
	assert.Equal(t, uint64(2500), amountDue, "wrong amount due")

	record, err := allocation.Get(1, 10, owner)
	assert.Nil(t, err, "get failed")
	assert.False(t, record.Paid, "new allocation already paid")
	assert.Zero(t, record.PaymentDate, "payment date set early")

	// only the allocated owner can pay
	stranger, _ := identity.New()
	err = allocation.RecordPayment(stranger, 1, 10)
	assert.Equal(t, fault.ErrAllocationNotFound, err, "stranger paid someone else's allocation")

	err = allocation.RecordPayment(owner, 1, 10)
	assert.Nil(t, err, "payment failed")

	record, err = allocation.Get(1, 10, owner)
	assert.Nil(t, err, "get failed")
	assert.True(t, record.Paid, "payment not recorded")
	assert.NotZero(t, record.PaymentDate, "missing payment date")

	err = allocation.RecordPayment(owner, 1, 10)
	assert.Equal(t, fault.ErrAllocationAlreadyPaid, err, "paid twice")
}

func TestReallocationResetsPayment(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	owner, _ := identity.New()
	assert.Nil(t, share.Register(contractOwner, 1, owner, 50), "register failed")
	assert.Nil(t, expense.Record(contractOwner, 1, 10, "roof repair", 5000, "maintenance"), "record failed")
	assert.Nil(t, expense.Distribute(1, 10), "distribute failed")

	_, err := allocation.Allocate(1, 10, owner)
	assert.Nil(t, err, "allocate failed")
	assert.Nil(t, allocation.RecordPayment(owner, 1, 10), "payment failed")

	// the owner's stake changed, a second allocation replaces the paid one
	assert.Nil(t, share.Register(contractOwner, 1, owner, 20), "re-register failed")
	amountDue, err := allocation.Allocate(1, 10, owner)
	assert.Nil(t, err, "re-allocate failed")
	assert.Equal(t, uint64(1000), amountDue, "wrong amount due")

	record, err := allocation.Get(1, 10, owner)
	assert.Nil(t, err, "get failed")
	assert.False(t, record.Paid, "paid flag survived re-allocation")
	assert.Zero(t, record.PaymentDate, "payment date survived re-allocation")
}

// the full life of one shared expense
func TestExpenseSettlement(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	alice, _ := identity.New()
	bob, _ := identity.New()

	assert.Nil(t, share.Register(contractOwner, 7, alice, 50), "register failed")
	assert.Nil(t, share.Register(contractOwner, 7, bob, 50), "register failed")

	assert.Nil(t, expense.Record(alice, 7, 1, "facade painting", 5000, "maintenance"), "record failed")
	assert.Nil(t, expense.Distribute(7, 1), "distribute failed")

	aliceDue, err := allocation.Allocate(7, 1, alice)
	assert.Nil(t, err, "allocate failed")
	bobDue, err := allocation.Allocate(7, 1, bob)
	assert.Nil(t, err, "allocate failed")
	assert.Equal(t, uint64(2500), aliceDue, "wrong amount for alice")
	assert.Equal(t, uint64(2500), bobDue, "wrong amount for bob")

	assert.Nil(t, allocation.RecordPayment(alice, 7, 1), "alice payment failed")
	assert.Nil(t, allocation.RecordPayment(bob, 7, 1), "bob payment failed")

	for _, owner := range []identity.Identity{alice, bob} {
		record, err := allocation.Get(7, 1, owner)
		assert.Nil(t, err, "get failed")
		assert.True(t, record.Paid, "allocation unsettled")
	}
}
