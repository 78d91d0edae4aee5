// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbisnetwork/orbis/orbis"
)

// denyOwner rejects a single account and admits everyone else.
type denyOwner struct {
	denied orbis.AccountID
}

func (d denyOwner) AllowedToStake(account orbis.AccountID) bool {
	return account != d.denied
}

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry[orbis.AccountID](nil)
	owner := orbis.BytesToAccountID([]byte("owner-1"))

	evm := EVMContract[orbis.AccountID](orbis.BytesToAddress([]byte("contract-1")))
	native := NativeContract(orbis.BytesToAccountID([]byte("contract-2")))

	first, err := registry.Register(owner, evm)
	require.NoError(t, err)
	assert.Equal(t, orbis.DAppID(0), first.ID)
	assert.Equal(t, owner, first.Owner)

	second, err := registry.Register(owner, native)
	require.NoError(t, err)
	assert.Equal(t, orbis.DAppID(1), second.ID)

	assert.Equal(t, 2, registry.Len())

	found, ok := registry.Lookup(evm)
	require.True(t, ok)
	assert.Equal(t, first, found)
}

func TestRegistryDuplicate(t *testing.T) {
	registry := NewRegistry[orbis.AccountID](nil)
	owner := orbis.BytesToAccountID([]byte("owner-1"))
	contract := EVMContract[orbis.AccountID](orbis.BytesToAddress([]byte("contract-1")))

	_, err := registry.Register(owner, contract)
	require.NoError(t, err)

	// a second registration of the same contract is rejected, regardless
	// of the owner
	_, err = registry.Register(orbis.BytesToAccountID([]byte("owner-2")), contract)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryGating(t *testing.T) {
	denied := orbis.BytesToAccountID([]byte("blocked"))
	registry := NewRegistry[orbis.AccountID](denyOwner{denied: denied})
	contract := EVMContract[orbis.AccountID](orbis.BytesToAddress([]byte("contract-1")))

	_, err := registry.Register(denied, contract)
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Equal(t, 0, registry.Len())

	_, err = registry.Register(orbis.BytesToAccountID([]byte("allowed")), contract)
	assert.NoError(t, err)
}

func TestRegistryAssignTier(t *testing.T) {
	registry := NewRegistry[orbis.AccountID](nil)
	owner := orbis.BytesToAccountID([]byte("owner-1"))
	contract := NativeContract(orbis.BytesToAccountID([]byte("contract-1")))

	dapp, err := registry.Register(owner, contract)
	require.NoError(t, err)
	assert.Equal(t, orbis.TierID(0), dapp.Tier)

	require.NoError(t, registry.AssignTier(contract, 3))
	found, ok := registry.Lookup(contract)
	require.True(t, ok)
	assert.Equal(t, orbis.TierID(3), found.Tier)

	unknown := NativeContract(orbis.BytesToAccountID([]byte("contract-2")))
	assert.ErrorIs(t, registry.AssignTier(unknown, 1), ErrNotRegistered)
}

func TestRegistryUnregister(t *testing.T) {
	registry := NewRegistry[orbis.AccountID](nil)
	owner := orbis.BytesToAccountID([]byte("owner-1"))
	contract := EVMContract[orbis.AccountID](orbis.BytesToAddress([]byte("contract-1")))

	_, err := registry.Register(owner, contract)
	require.NoError(t, err)
	require.NoError(t, registry.Unregister(contract))

	_, ok := registry.Lookup(contract)
	assert.False(t, ok)
	assert.ErrorIs(t, registry.Unregister(contract), ErrNotRegistered)

	// ids of unregistered dApps are retired
	dapp, err := registry.Register(owner, contract)
	require.NoError(t, err)
	assert.Equal(t, orbis.DAppID(1), dapp.ID)
}
