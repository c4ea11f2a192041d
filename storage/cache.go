// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - staging overlay for not yet committed batch operations
type Cache interface {
	Get(string) ([]byte, bool)
	Deleted(string) bool
	Set(int, string, []byte)
	Clear()
}

const (
	dbPut = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

// Get - staged value for a key
//
// a key staged for delete reports not found
func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return []byte{}, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return []byte{}, false
	}

	return data.value, true
}

// Deleted - check if a key is staged for delete
func (c *dbCache) Deleted(key string) bool {
	obj, found := c.cache.Get(key)
	if !found {
		return false
	}
	return dbDelete == obj.(cacheData).op
}

// Set - record a staged operation for a key
func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, defaultExpiration)
}

// Clear - drop all staged operations
func (c *dbCache) Clear() {
	c.cache.Flush()
}
