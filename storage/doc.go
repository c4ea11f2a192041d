// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++          = concatenation of byte data
// 3. property id = big endian uint64 (8 bytes)
// 4. expense id  = big endian uint64 (8 bytes)
// 5. lease id    = big endian uint64 (8 bytes)
// 6. tenant id   = big endian uint64 (8 bytes)
// 7. period      = big endian uint64 (8 bytes)
// 8. identity    = 32 byte opaque identifier (owner, tenant or caller)
//
// Shares:
//
//   S ++ property id ++ identity                - ownership share
//                                                 data: packed share record
//
// Expenses:
//
//   E ++ property id ++ expense id              - recorded expense
//                                                 data: packed expense record
//
// Allocations:
//
//   A ++ property id ++ expense id ++ identity  - per-owner payment allocation
//                                                 data: packed allocation record
//
// Tenants:
//
//   T ++ tenant id                              - tenant directory entry
//                                                 data: packed tenant record
//
// Leases:
//
//   L ++ property id ++ lease id                - lease record
//                                                 data: packed lease record
//
// Rents:
//
//   R ++ property id ++ lease id ++ period      - rent payment log entry
//                                                 data: packed rent record
//
// Administration:
//
//   M ++ "OWNER"                                - current contract owner identity
//   M ++ "SEQ"                                  - global sequence counter (big endian uint64)
package storage
