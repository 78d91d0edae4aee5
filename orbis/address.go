// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package orbis

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	// AddressLength length of an EVM address in bytes.
	AddressLength = common.AddressLength
	// AccountIDLength length of a native account identifier in bytes.
	AccountIDLength = 32
)

// Address is an EVM-style 20-byte account address.
type Address common.Address

// String implements the stringer interface.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns the byte slice form of the address.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the address is all zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

// ParseAddress converts a string presented address into Address type.
func ParseAddress(s string) (*Address, error) {
	if len(s) == AddressLength*2 {
	} else if len(s) == AddressLength*2+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return nil, errors.New("invalid prefix")
		}
		s = s[2:]
	} else {
		return nil, errors.New("invalid length")
	}

	var addr Address
	if _, err := hex.Decode(addr[:], []byte(s)); err != nil {
		return nil, err
	}
	return &addr, nil
}

// MustParseAddress convert string presented address into Address type, panic on error.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return *addr
}

// BytesToAddress converts a byte slice into an address.
// If b is larger than the address length b is cropped from the left,
// if smaller it is extended from the left.
func BytesToAddress(b []byte) Address {
	return Address(common.BytesToAddress(b))
}

// AccountID is a native 32-byte account identifier.
type AccountID [AccountIDLength]byte

// String implements the stringer interface.
func (id AccountID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// Bytes returns the byte slice form of the account id.
func (id AccountID) Bytes() []byte {
	return id[:]
}

// IsZero reports whether the account id is all zero.
func (id AccountID) IsZero() bool {
	return id == AccountID{}
}

// ParseAccountID converts a hex string into an AccountID.
func ParseAccountID(s string) (*AccountID, error) {
	if len(s) == AccountIDLength*2 {
	} else if len(s) == AccountIDLength*2+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return nil, errors.New("invalid prefix")
		}
		s = s[2:]
	} else {
		return nil, errors.New("invalid length")
	}

	var id AccountID
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return nil, err
	}
	return &id, nil
}

// BytesToAccountID converts a byte slice into an account id.
// If b is larger than the id length b is cropped from the left,
// if smaller it is extended from the left.
func BytesToAccountID(b []byte) AccountID {
	var id AccountID
	if len(b) > AccountIDLength {
		b = b[len(b)-AccountIDLength:]
	}
	copy(id[AccountIDLength-len(b):], b)
	return id
}
