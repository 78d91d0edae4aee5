// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orbisnetwork/orbis/orbis"
)

type recordingObserver struct {
	id     string
	weight orbis.Weight
	calls  *[]string
}

func (o recordingObserver) BlockBeforeNewEra(orbis.EraNumber) orbis.Weight {
	*o.calls = append(*o.calls, o.id)
	return o.weight
}

func TestNoopObserver(t *testing.T) {
	assert.Equal(t, orbis.Weight(0), NoopObserver{}.BlockBeforeNewEra(1))
	assert.Equal(t, orbis.Weight(0), NoopObserver{}.BlockBeforeNewEra(42))
}

func TestObserverChain(t *testing.T) {
	var calls []string
	chain := ObserverChain{
		recordingObserver{id: "a", weight: 2, calls: &calls},
		recordingObserver{id: "b", weight: 3, calls: &calls},
		recordingObserver{id: "c", weight: 5, calls: &calls},
	}

	total := chain.BlockBeforeNewEra(7)
	assert.Equal(t, orbis.Weight(10), total)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	// invocation order is fixed across repeated runs
	calls = calls[:0]
	assert.Equal(t, total, chain.BlockBeforeNewEra(7))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestObserverChainEmpty(t *testing.T) {
	assert.Equal(t, orbis.Weight(0), ObserverChain{}.BlockBeforeNewEra(1))
}

func TestObserverChainWeightSaturation(t *testing.T) {
	var calls []string
	chain := ObserverChain{
		recordingObserver{id: "max", weight: orbis.MaxWeight, calls: &calls},
		recordingObserver{id: "one", weight: 1, calls: &calls},
	}
	assert.Equal(t, orbis.MaxWeight, chain.BlockBeforeNewEra(1))
}
