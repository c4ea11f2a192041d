// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tenant - the tenant identity directory
//
// Maps small numeric tenant ids onto full identities so lease records
// can reference tenants compactly.  Entries are immutable once
// registered, so resolved identities are kept in a short lived cache.
package tenant

import (
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/propertyd/admin"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/records"
	"github.com/bitmark-inc/propertyd/storage"
)

const (
	resolveCacheExpiry  = 5 * time.Minute
	resolveCacheCleanup = 10 * time.Minute
)

// globals
var globalData struct {
	sync.RWMutex
	log      *logger.L
	pool     storage.Handle
	resolved *cache.Cache

	// set once during initialise
	initialised bool
}

// Initialise - connect the directory to its pool
func Initialise(pool storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("tenant")
	globalData.log.Info("starting…")
	globalData.pool = pool
	globalData.resolved = cache.New(resolveCacheExpiry, resolveCacheCleanup)

	globalData.initialised = true
	return nil
}

// Finalise - shut down the directory
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.resolved.Flush()
	globalData.initialised = false
	return nil
}

// Register - add a tenant to the directory
//
// contract owner only; a tenant id can never be reassigned
func Register(caller identity.Identity, tenantId uint64, tenantIdentity identity.Identity, name string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if !admin.IsOwner(caller) {
		return fault.ErrNotAuthorized
	}
	if tenantIdentity.IsZero() || "" == name {
		return fault.ErrMissingParameters
	}

	key := records.TenantKey(tenantId)

	trx := storage.NewDBTransaction()

	if trx.Has(globalData.pool, key) {
		trx.Abort()
		return fault.ErrTenantAlreadyExists
	}

	record := records.TenantRecord{
		Identity:     tenantIdentity,
		Name:         name,
		RegisteredAt: uint64(time.Now().Unix()),
	}
	trx.Put(globalData.pool, key, record.Pack())

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("registered tenant: %d  identity: %s  name: %q", tenantId, tenantIdentity, name)
	return nil
}

// Resolve - look up a tenant's identity by id
//
// entries never change, so hits are served from the cache
func Resolve(tenantId uint64) (identity.Identity, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return identity.Identity{}, fault.ErrNotInitialised
	}

	cacheKey := strconv.FormatUint(tenantId, 10)
	if cached, ok := globalData.resolved.Get(cacheKey); ok {
		return cached.(identity.Identity), nil
	}

	record, err := get(tenantId)
	if nil != err {
		return identity.Identity{}, err
	}

	globalData.resolved.Set(cacheKey, record.Identity, cache.DefaultExpiration)
	return record.Identity, nil
}

// Get - fetch a full tenant record
func Get(tenantId uint64) (*records.TenantRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	return get(tenantId)
}

// read a tenant record, globalData lock already held
func get(tenantId uint64) (*records.TenantRecord, error) {
	packed := globalData.pool.Get(records.TenantKey(tenantId))
	if nil == packed {
		return nil, fault.ErrTenantNotFound
	}
	return records.Packed(packed).UnpackTenant()
}
