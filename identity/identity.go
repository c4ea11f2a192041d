// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - caller and owner identities
//
// An identity is a fixed size opaque identifier displayed in base58
// with a SHA3 checksum, in the same manner as an account string.
package identity

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/propertyd/fault"
)

// Size - length of the raw identity in bytes
const Size = 32

// checksum bytes appended to the base58 form
const checksumSize = 4

// Identity - raw identity value
type Identity [Size]byte

// New - create a random identity
func New() (Identity, error) {
	var id Identity
	if _, err := rand.Read(id[:]); nil != err {
		return id, err
	}
	return id, nil
}

// FromBase58 - decode an identity from its base58 string
func FromBase58(s string) (Identity, error) {
	var id Identity

	buffer, err := base58.Decode(s)
	if nil != err {
		return id, fault.ErrIdentityLength
	}
	if Size+checksumSize != len(buffer) {
		return id, fault.ErrIdentityLength
	}

	digest := sha3.Sum256(buffer[:Size])
	for i := 0; i < checksumSize; i += 1 {
		if buffer[Size+i] != digest[i] {
			return id, fault.ErrIdentityChecksum
		}
	}

	copy(id[:], buffer[:Size])
	return id, nil
}

// IsZero - detect the all-zero identity
func (id Identity) IsZero() bool {
	for _, b := range id {
		if 0 != b {
			return false
		}
	}
	return true
}

// Bytes - raw bytes of the identity
func (id Identity) Bytes() []byte {
	return id[:]
}

// String - base58 with checksum
func (id Identity) String() string {
	buffer := make([]byte, 0, Size+checksumSize)
	buffer = append(buffer, id[:]...)
	digest := sha3.Sum256(id[:])
	buffer = append(buffer, digest[:checksumSize]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an identity to its text form
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 text to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
