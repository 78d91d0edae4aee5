// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package orbis

import (
	"math"
	"math/bits"
)

// Saturating arithmetic helpers. Consensus code must never panic on
// pathological configuration, and wraparound would corrupt era accounting
// network-wide, so every composed quantity clamps to the maximum instead.

// SaturatingAdd32 returns a+b, or MaxUint32 if the sum overflows.
func SaturatingAdd32(a, b uint32) uint32 {
	v, carry := bits.Add32(a, b, 0)
	if carry != 0 {
		return math.MaxUint32
	}
	return v
}

// SaturatingMul32 returns a*b, or MaxUint32 if the product overflows.
func SaturatingMul32(a, b uint32) uint32 {
	hi, lo := bits.Mul32(a, b)
	if hi != 0 {
		return math.MaxUint32
	}
	return lo
}

// SaturatingAdd64 returns a+b, or MaxUint64 if the sum overflows.
func SaturatingAdd64(a, b uint64) uint64 {
	v, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return v
}

// SaturatingMul64 returns a*b, or MaxUint64 if the product overflows.
func SaturatingMul64(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
