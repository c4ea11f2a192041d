// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package records - stored record layouts
//
// All records are stored as byte packed data:
//
//   numbers    - Varint64
//   strings    - Varint64 length followed by the UTF-8 bytes
//   identities - fixed 32 bytes
//   booleans   - one byte: 0x00 = false, 0x01 = true
//
// Keys for the storage pools are fixed layout big endian values so
// that related records sort together, see the storage package doc.
package records
