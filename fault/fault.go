// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationAlreadyPaid        = ProcessError("allocation is already paid")
	ErrAllocationNotFound           = NotFoundError("allocation not found")
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrExpenseAlreadyDistributed    = ProcessError("expense is already distributed")
	ErrExpenseAlreadyExists         = ExistsError("expense already exists")
	ErrExpenseNotDistributed        = ProcessError("expense is not yet distributed")
	ErrExpenseNotFound              = NotFoundError("expense not found")
	ErrIdentityChecksum             = InvalidError("identity checksum is invalid")
	ErrIdentityLength               = InvalidError("identity length is invalid")
	ErrInvalidDBVersion             = ProcessError("database version is newer than program")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidNetwork               = InvalidError("invalid network name")
	ErrInvalidPercentage            = InvalidError("percentage is out of range")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrLeaseAlreadyExists           = ExistsError("lease already exists")
	ErrLeaseNotFound                = NotFoundError("lease not found")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotAuthorized                = AccessError("caller is not authorized")
	ErrNotAvailableDuringStartup    = ProcessError("not available during startup")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotLeaseTenant               = AccessError("caller is not the lease tenant")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordCorrupted              = RecordError("record data is corrupted")
	ErrRentAlreadyRecorded          = ExistsError("rent payment already recorded")
	ErrRentNotFound                 = NotFoundError("rent payment not found")
	ErrShareNotFound                = NotFoundError("ownership share not found")
	ErrTenantAlreadyExists          = ExistsError("tenant already exists")
	ErrTenantNotFound               = NotFoundError("tenant not found")
	ErrTransactionAlreadyInProgress = ProcessError("transaction already in progress")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
