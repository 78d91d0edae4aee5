// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package orbis

import "github.com/holiman/uint256"

// Balance is an amount of funds, a 256-bit unsigned integer.
// All composed balance arithmetic in the protocol saturates on overflow.
type Balance = uint256.Int

// NewBalance returns a balance holding v.
func NewBalance(v uint64) *Balance {
	return uint256.NewInt(v)
}

// MaxBalance returns the largest representable balance.
func MaxBalance() *Balance {
	return new(uint256.Int).SetAllOne()
}

// SaturatingAddBalance returns a+b, clamped to the maximum balance.
func SaturatingAddBalance(a, b *Balance) *Balance {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return MaxBalance()
	}
	return sum
}

// SaturatingMulBalance returns a*b, clamped to the maximum balance.
func SaturatingMulBalance(a, b *Balance) *Balance {
	product, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return MaxBalance()
	}
	return product
}

// MulDivBalance returns a*b/d, clamped to the maximum balance.
// A zero divisor yields zero rather than a panic.
func MulDivBalance(a, b, d *Balance) *Balance {
	if d.IsZero() {
		return new(uint256.Int)
	}
	quot, overflow := new(uint256.Int).MulDivOverflow(a, b, d)
	if overflow {
		return MaxBalance()
	}
	return quot
}
