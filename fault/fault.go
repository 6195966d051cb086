// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
//
// InvalidError   - malformed input: out-of-range index, zero/oversized value, self-transfer
// InsufficientError - a balance, allowance or transferable-set fell short of what was requested
// RejectedError  - a collaborator (compliance oracle, policy hook, time lock, ownership check) declined the operation
// PermissionError - the caller's authority predicate failed
type InvalidError GenericError
type InsufficientError GenericError
type RejectedError GenericError
type PermissionError GenericError

// common errors - keep in alphabetic order within each class
var (
	ErrAlreadyInitialised   = InvalidError("package already initialised")
	ErrInvalidAddress       = InvalidError("address is not well formed")
	ErrInvalidAddressLength = InvalidError("address length is invalid")
	ErrInvalidIndex         = InvalidError("index is zero or beyond the upper bound")
	ErrInvalidLoggerChannel = InvalidError("logger channel could not be created")
	ErrInvalidStructPointer = InvalidError("argument is not a pointer to a struct")
	ErrSelfTransfer         = InvalidError("sender and recipient are the same address")
	ErrUpperBoundExceeded   = InvalidError("mint would exceed the maximum index space")
	ErrValueTooLarge        = InvalidError("value does not fit in 48 bits")
	ErrZeroValue            = InvalidError("value is zero")

	ErrInsufficientAllowance         = InsufficientError("allowance is insufficient")
	ErrInsufficientBalance           = InsufficientError("balance is insufficient")
	ErrInsufficientCustodialBalance  = InsufficientError("custodial balance is insufficient")
	ErrInsufficientTransferable      = InsufficientError("no combination of candidate ranges satisfies the requested value")

	ErrComplianceRejected        = RejectedError("compliance oracle rejected the transfer")
	ErrCustodianSendDisallowed   = RejectedError("a custodian account may not use transferRange")
	ErrNotOwner                  = RejectedError("caller does not own the enclosing range")
	ErrPolicyRejected            = RejectedError("a policy hook rejected the transfer")
	ErrTimeLocked                = RejectedError("range is time locked")

	ErrPermissionDenied = PermissionError("caller lacks authority for this operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string     { return string(e) }
func (e InsufficientError) Error() string { return string(e) }
func (e RejectedError) Error() string    { return string(e) }
func (e PermissionError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrInsufficient(e error) bool { _, ok := e.(InsufficientError); return ok }
func IsErrRejected(e error) bool    { _, ok := e.(RejectedError); return ok }
func IsErrPermission(e error) bool  { _, ok := e.(PermissionError); return ok }
