// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package orbis

import "math"

// EraNumber is the basic reward-accounting time unit counter.
// It never decreases across the lifetime of the chain.
type EraNumber uint32

// PeriodNumber counts completed periods. It increments exactly once per period.
type PeriodNumber uint32

// BlockNumber is the chain's native block index. One per produced block,
// strictly increasing.
type BlockNumber uint32

// DAppID identifies a registered dApp.
type DAppID uint16

// TierID identifies a dApp reward tier.
type TierID uint8

// Weight measures computational cost consumed by a call, used for
// resource accounting at era boundaries.
type Weight uint64

// Add returns w+o, clamped to the maximum representable weight.
func (w Weight) Add(o Weight) Weight {
	return Weight(SaturatingAdd64(uint64(w), uint64(o)))
}

// IsZero reports whether no weight was consumed.
func (w Weight) IsZero() bool { return w == 0 }

// MaxWeight is the largest representable weight.
const MaxWeight = Weight(math.MaxUint64)
