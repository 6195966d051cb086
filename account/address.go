// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identity of ledger participants
//
// An Address is the opaque identifier under which the range-ledger
// tracks ownership, custodianship and allowances. It carries no key
// material: authentication of the caller claiming to be a given
// address is a concern of the host (see fault.ErrPermissionDenied
// callers), not of this package.
package account

import (
	"encoding/hex"
	"fmt"

	"github.com/certshare/rangeledger/fault"
)

// Length - size in bytes of an Address
const Length = 20

// Address - opaque account identifier
//
// The all-zero value is reserved: it denotes "no owner" (a burned
// slot) when used as a range owner, and "no custodian" when used as
// a range custodian.
type Address [Length]byte

// Zero - the reserved null address
var Zero Address

// IsZero - true if the address is the reserved null address
func (a Address) IsZero() bool {
	return a == Zero
}

// Equal - constant-time-irrelevant, simple equality of two addresses
func (a Address) Equal(b Address) bool {
	return a == b
}

// Bytes - byte slice view of the address
func (a Address) Bytes() []byte {
	return a[:]
}

// String - hex representation for use by fmt's %s
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// GoString - hex representation for use by fmt's %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert address to text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an address
func (a *Address) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}

// FromBytes - build an address from a byte slice, must be exactly Length bytes
func FromBytes(b []byte) (Address, error) {
	var a Address
	if Length != len(b) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], b)
	return a, nil
}

// FromString - parse a "0x"-prefixed hex string into an address
func FromString(s string) (Address, error) {
	var a Address
	if len(s) >= 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	decoded, err := hex.DecodeString(s)
	if nil != err {
		return a, fmt.Errorf("%w: %s", fault.ErrInvalidAddress, err)
	}
	return FromBytes(decoded)
}
