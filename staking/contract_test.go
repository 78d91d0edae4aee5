// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orbisnetwork/orbis/orbis"
)

func TestSmartContractVariants(t *testing.T) {
	addr := orbis.MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	evm := EVMContract[orbis.AccountID](addr)
	native := NativeContract[orbis.AccountID](orbis.BytesToAccountID([]byte{1}))

	assert.Equal(t, KindEVM, evm.Kind())
	assert.Equal(t, KindNative, native.Kind())

	got, ok := evm.EVM()
	assert.True(t, ok)
	assert.Equal(t, addr, got)
	_, ok = evm.Native()
	assert.False(t, ok)

	account, ok := native.Native()
	assert.True(t, ok)
	assert.Equal(t, orbis.BytesToAccountID([]byte{1}), account)
	_, ok = native.EVM()
	assert.False(t, ok)
}

func TestSmartContractEquality(t *testing.T) {
	addr := orbis.MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")

	// equality is structural over the active variant
	assert.Equal(t, EVMContract[orbis.AccountID](addr), EVMContract[orbis.AccountID](addr))
	assert.NotEqual(t, EVMContract[orbis.AccountID](addr), EVMContract[orbis.AccountID](orbis.Address{}))
	assert.NotEqual(t,
		EVMContract[orbis.AccountID](orbis.Address{}),
		NativeContract[orbis.AccountID](orbis.AccountID{}))
}

func TestSmartContractAsMapKey(t *testing.T) {
	addr := orbis.MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	stakes := map[SmartContract[orbis.AccountID]]uint64{}

	stakes[EVMContract[orbis.AccountID](addr)] = 100
	stakes[NativeContract[orbis.AccountID](orbis.BytesToAccountID([]byte{7}))] = 200

	assert.Len(t, stakes, 2)
	assert.Equal(t, uint64(100), stakes[EVMContract[orbis.AccountID](addr)])
	assert.Equal(t, uint64(200), stakes[NativeContract[orbis.AccountID](orbis.BytesToAccountID([]byte{7}))])
}

func TestAllowAll(t *testing.T) {
	var check AccountCheck[orbis.AccountID] = AllowAll[orbis.AccountID]{}

	assert.True(t, check.AllowedToStake(orbis.AccountID{}))
	assert.True(t, check.AllowedToStake(orbis.BytesToAccountID([]byte{0xff})))
}

func TestContractKindString(t *testing.T) {
	assert.Equal(t, "evm", KindEVM.String())
	assert.Equal(t, "native", KindNative.String())
}
