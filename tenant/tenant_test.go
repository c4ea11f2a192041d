// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tenant_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
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
	if err := tenant.Initialise(storage.Pool.Tenants); nil != err {
		t.Fatalf("tenant setup failed: %s", err)
	}

	return contractOwner
}

func teardown(t *testing.T) {
	if err := tenant.Finalise(); nil != err {
		t.Errorf("tenant teardown failed: %s", err)
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

	tenantIdentity, _ := identity.New()

	err := tenant.Register(contractOwner, 1, tenantIdentity, "ACME Trading Ltd")
	assert.Nil(t, err, "register failed")

	record, err := tenant.Get(1)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, tenantIdentity, record.Identity, "wrong identity")
	assert.Equal(t, "ACME Trading Ltd", record.Name, "wrong name")
	assert.NotZero(t, record.RegisteredAt, "missing timestamp")

	_, err = tenant.Get(2)
	assert.Equal(t, fault.ErrTenantNotFound, err, "phantom tenant")
}

func TestRegisterRequiresContractOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	stranger, _ := identity.New()
	tenantIdentity, _ := identity.New()

	err := tenant.Register(stranger, 1, tenantIdentity, "ACME Trading Ltd")
	assert.Equal(t, fault.ErrNotAuthorized, err, "stranger registered a tenant")
}

func TestRegisterRejectsDuplicateId(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	first, _ := identity.New()
	second, _ := identity.New()

	err := tenant.Register(contractOwner, 1, first, "ACME Trading Ltd")
	assert.Nil(t, err, "register failed")

	err = tenant.Register(contractOwner, 1, second, "Imposter Inc")
	assert.Equal(t, fault.ErrTenantAlreadyExists, err, "tenant id reassigned")

	record, err := tenant.Get(1)
	assert.Nil(t, err, "get failed")
	assert.Equal(t, first, record.Identity, "original identity replaced")
}

func TestResolve(t *testing.T) {
	contractOwner := setup(t)
	defer teardown(t)

	tenantIdentity, _ := identity.New()

	_, err := tenant.Resolve(1)
	assert.Equal(t, fault.ErrTenantNotFound, err, "resolved a missing tenant")

	err = tenant.Register(contractOwner, 1, tenantIdentity, "ACME Trading Ltd")
	assert.Nil(t, err, "register failed")

	resolved, err := tenant.Resolve(1)
	assert.Nil(t, err, "resolve failed")
	assert.Equal(t, tenantIdentity, resolved, "wrong identity")

	// second resolve is served from the cache
	resolved, err = tenant.Resolve(1)
	assert.Nil(t, err, "cached resolve failed")
	assert.Equal(t, tenantIdentity, resolved, "wrong cached identity")
}
