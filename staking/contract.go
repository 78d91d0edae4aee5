// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/orbisnetwork/orbis/orbis"

// ContractKind discriminates the execution environment a smart contract
// originates from.
type ContractKind uint8

const (
	// KindEVM marks an EVM smart contract instance.
	KindEVM ContractKind = iota
	// KindNative marks a native (non-EVM) smart contract instance.
	KindNative
)

func (k ContractKind) String() string {
	switch k {
	case KindEVM:
		return "evm"
	case KindNative:
		return "native"
	default:
		return "unknown"
	}
}

// SmartContract is a multi-VM pointer to a smart contract instance. It is a
// two-variant tagged union over an EVM address and a native account
// identifier. The staking core treats it as an opaque key: it is comparable,
// usable as a map key, and equality is structural over the active variant.
type SmartContract[A comparable] struct {
	kind   ContractKind
	evm    orbis.Address
	native A
}

// EVMContract returns the contract representation for an EVM address.
func EVMContract[A comparable](addr orbis.Address) SmartContract[A] {
	return SmartContract[A]{kind: KindEVM, evm: addr}
}

// NativeContract returns the contract representation for a native account.
func NativeContract[A comparable](account A) SmartContract[A] {
	return SmartContract[A]{kind: KindNative, native: account}
}

// Kind returns the active variant.
func (c SmartContract[A]) Kind() ContractKind { return c.kind }

// EVM returns the EVM address and true when the EVM variant is active.
func (c SmartContract[A]) EVM() (orbis.Address, bool) {
	return c.evm, c.kind == KindEVM
}

// Native returns the native account and true when the native variant is active.
func (c SmartContract[A]) Native() (A, bool) {
	return c.native, c.kind == KindNative
}

// AccountCheck decides whether an account may participate in dApp staking.
type AccountCheck[A any] interface {
	AllowedToStake(account A) bool
}

// AllowAll is the default gating policy. Every account may stake.
type AllowAll[A any] struct{}

// AllowedToStake implements AccountCheck.
func (AllowAll[A]) AllowedToStake(A) bool { return true }
