// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/orbisnetwork/orbis/orbis"

// EraObserver is notified of upcoming era transitions.
//
// Observers perform bounded work and report the weight they consumed so the
// scheduler can account for it. Implementations must be deterministic;
// the same inputs have to produce the same result on every node.
type EraObserver interface {
	// BlockBeforeNewEra is called exactly once, in the block right before
	// next becomes the active era.
	BlockBeforeNewEra(next orbis.EraNumber) orbis.Weight
}

// NoopObserver is the explicit null observer. It consumes no weight and is
// the default when nothing is registered.
type NoopObserver struct{}

// BlockBeforeNewEra implements EraObserver.
func (NoopObserver) BlockBeforeNewEra(orbis.EraNumber) orbis.Weight {
	return 0
}

// ObserverChain composes multiple observers. They are invoked in slice
// order, which is fixed at composition time, and their weights are summed.
// An empty chain behaves like NoopObserver.
type ObserverChain []EraObserver

// BlockBeforeNewEra implements EraObserver.
func (c ObserverChain) BlockBeforeNewEra(next orbis.EraNumber) orbis.Weight {
	var total orbis.Weight
	for _, o := range c {
		total = total.Add(o.BlockBeforeNewEra(next))
	}
	return total
}
