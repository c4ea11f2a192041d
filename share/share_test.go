// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package share_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/admin"
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

	return contractOwner
}

func teardown(t *testing.T) {
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

func TestRegisterAndGet(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	owner, _ := identity.New()

	err := share.Register(contractOwner, 1, owner, 50)
	assert.Nil(t, err, "register failed")

	record, err := share.Get(1, owner)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, uint64(50), record.Percentage, "wrong percentage")
	assert.NotZero(t, record.UpdatedAt, "missing timestamp")
	assert.NotZero(t, record.Sequence, "missing sequence")

	// same owner on a different property is a separate stake
	_, err = share.Get(2, owner)
	assert.Equal(t, fault.ErrShareNotFound, err, "stake leaked across properties")
}

func TestRegisterAuthorization(t *testing.T) {
	setup(t)
	defer teardown(t)

	stranger, _ := identity.New()
	owner, _ := identity.New()

	err := share.Register(stranger, 1, owner, 50)
	assert.Equal(t, fault.ErrNotAuthorized, err, "stranger registered another owner's share")

	_, err = share.Get(1, owner)
	assert.Equal(t, fault.ErrShareNotFound, err, "share stored anyway")

	// an owner may register its own stake
	err = share.Register(owner, 1, owner, 50)
	assert.Nil(t, err, "self registration failed")

	record, err := share.Get(1, owner)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, uint64(50), record.Percentage, "wrong percentage")
}

func TestRegisterRejectsExcessPercentage(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	owner, _ := identity.New()

	err := share.Register(contractOwner, 1, owner, 101)
	assert.Equal(t, fault.ErrInvalidPercentage, err, "accepted out of range percentage")

	_, err = share.Get(1, owner)
	assert.Equal(t, fault.ErrShareNotFound, err, "share stored anyway")

	// full ownership is still in range
	err = share.Register(contractOwner, 1, owner, 100)
	assert.Nil(t, err, "rejected 100 percent")
}

func TestReRegisterOverwrites(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	owner, _ := identity.New()

	err := share.Register(contractOwner, 1, owner, 30)
	assert.Nil(t, err, "register failed")
	first, err := share.Get(1, owner)
	assert.Nil(t, err, "get failed")

	err = share.Register(contractOwner, 1, owner, 70)
	assert.Nil(t, err, "re-register failed")
	second, err := share.Get(1, owner)
	assert.Nil(t, err, "get failed")

	assert.Equal(t, uint64(70), second.Percentage, "old percentage kept")
	assert.True(t, second.Sequence > first.Sequence, "sequence did not advance")
}
