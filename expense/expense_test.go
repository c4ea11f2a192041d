// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expense_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/expense"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
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

	if err := expense.Initialise(storage.Pool.Expenses); nil != err {
		t.Fatalf("expense setup failed: %s", err)
	}

	payer, err := identity.New()
	if nil != err {
		t.Fatalf("identity setup failed: %s", err)
	}
	return payer
}

func teardown(t *testing.T) {
	if err := expense.Finalise(); nil != err {
		t.Errorf("expense teardown failed: %s", err)
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

func TestRecordAndGet(t *testing.T) {
	payer := setup(t)
	defer teardown(t)

	err := expense.Record(payer, 1, 10, "roof repair", 5000, "maintenance")
	assert.Nil(t, err, "record failed")

	record, err := expense.Get(1, 10)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, "roof repair", record.Description, "wrong description")
	assert.Equal(t, uint64(5000), record.Amount, "wrong amount")
	assert.Equal(t, "maintenance", record.Category, "wrong category")
	assert.Equal(t, payer, record.PaidBy, "wrong payer")
	assert.False(t, record.Distributed, "new expense already distributed")
	assert.NotZero(t, record.Date, "missing date")
}

func TestRecordRejectsDuplicateId(t *testing.T) {
	payer := setup(t)
	defer teardown(t)

	err := expense.Record(payer, 1, 10, "roof repair", 5000, "maintenance")
	assert.Nil(t, err, "record failed")

	other, _ := identity.New()
	err = expense.Record(other, 1, 10, "window cleaning", 200, "cleaning")
	assert.Equal(t, fault.ErrExpenseAlreadyExists, err, "duplicate id accepted")

	// the original record must be untouched
	record, err := expense.Get(1, 10)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, "roof repair", record.Description, "original record replaced")
	assert.Equal(t, payer, record.PaidBy, "original payer replaced")

	// the same id on another property is a separate expense
	err = expense.Record(other, 2, 10, "window cleaning", 200, "cleaning")
	assert.Nil(t, err, "id leaked across properties")
}

func TestRecordRejectsZeroCaller(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := expense.Record(identity.Identity{}, 1, 10, "roof repair", 5000, "maintenance")
	assert.Equal(t, fault.ErrMissingParameters, err, "zero caller accepted")

	_, err = expense.Get(1, 10)
	assert.Equal(t, fault.ErrExpenseNotFound, err, "expense stored anyway")
}

func TestDistributeIsOneWay(t *testing.T) {
	payer := setup(t)
	defer teardown(t)

	err := expense.Distribute(1, 10)
	assert.Equal(t, fault.ErrExpenseNotFound, err, "distributed a missing expense")

	err = expense.Record(payer, 1, 10, "roof repair", 5000, "maintenance")
	assert.Nil(t, err, "record failed")

	err = expense.Distribute(1, 10)
	assert.Nil(t, err, "distribute failed")

	record, err := expense.Get(1, 10)
	assert.Nil(t, err, "get failed")
	assert.True(t, record.Distributed, "flag not set")

	err = expense.Distribute(1, 10)
	assert.Equal(t, fault.ErrExpenseAlreadyDistributed, err, "distributed twice")

	// record stays intact after the failed second distribute
	record, err = expense.Get(1, 10)
	assert.Nil(t, err, "get failed")
	assert.True(t, record.Distributed, "flag lost")
	assert.Equal(t, uint64(5000), record.Amount, "amount changed")
}
