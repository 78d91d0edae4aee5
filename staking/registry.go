// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math"

	"github.com/pkg/errors"

	"github.com/orbisnetwork/orbis/orbis"
)

var (
	// ErrNotAllowed is returned when the gating policy rejects an account.
	ErrNotAllowed = errors.New("account not allowed to participate")
	// ErrAlreadyRegistered is returned when a contract is registered twice.
	ErrAlreadyRegistered = errors.New("contract already registered")
	// ErrNotRegistered is returned for operations on unknown contracts.
	ErrNotRegistered = errors.New("contract not registered")
	// ErrIDExhausted is returned when no dApp ids remain.
	ErrIDExhausted = errors.New("dApp id space exhausted")
)

// DApp is the registration record of a dApp eligible for staking rewards.
type DApp[A comparable] struct {
	ID       orbis.DAppID
	Owner    A
	Contract SmartContract[A]
	// Tier is the reward tier the dApp was last assigned to. Zero until an
	// assignment is made.
	Tier orbis.TierID
}

// Registry tracks registered dApps keyed by their smart contract. Contract
// identity is structural, so the same raw bytes registered as EVM and as
// native count as two distinct dApps. Ids are assigned in registration
// order and never reused, unregistration included.
type Registry[A comparable] struct {
	check  AccountCheck[A]
	nextID uint32
	dapps  map[SmartContract[A]]*DApp[A]
}

// NewRegistry creates an empty registry gated by check. A nil check admits
// every account.
func NewRegistry[A comparable](check AccountCheck[A]) *Registry[A] {
	if check == nil {
		check = AllowAll[A]{}
	}
	return &Registry[A]{
		check: check,
		dapps: make(map[SmartContract[A]]*DApp[A]),
	}
}

// Register adds a dApp owned by owner and returns its record.
func (r *Registry[A]) Register(owner A, contract SmartContract[A]) (*DApp[A], error) {
	if !r.check.AllowedToStake(owner) {
		return nil, ErrNotAllowed
	}
	if _, ok := r.dapps[contract]; ok {
		return nil, ErrAlreadyRegistered
	}
	if r.nextID > math.MaxUint16 {
		return nil, ErrIDExhausted
	}

	dapp := &DApp[A]{
		ID:       orbis.DAppID(r.nextID),
		Owner:    owner,
		Contract: contract,
	}
	r.nextID++
	r.dapps[contract] = dapp
	return dapp, nil
}

// Lookup returns the record of a registered contract.
func (r *Registry[A]) Lookup(contract SmartContract[A]) (*DApp[A], bool) {
	dapp, ok := r.dapps[contract]
	return dapp, ok
}

// AssignTier records the reward tier of a registered dApp.
func (r *Registry[A]) AssignTier(contract SmartContract[A], tier orbis.TierID) error {
	dapp, ok := r.dapps[contract]
	if !ok {
		return ErrNotRegistered
	}
	dapp.Tier = tier
	return nil
}

// Unregister removes a dApp. Its id is retired, not reused.
func (r *Registry[A]) Unregister(contract SmartContract[A]) error {
	if _, ok := r.dapps[contract]; !ok {
		return ErrNotRegistered
	}
	delete(r.dapps, contract)
	return nil
}

// Len returns the number of registered dApps.
func (r *Registry[A]) Len() int {
	return len(r.dapps)
}
