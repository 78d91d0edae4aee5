// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package orbis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatingAdd32(t *testing.T) {
	assert.Equal(t, uint32(3), SaturatingAdd32(1, 2))
	assert.Equal(t, uint32(math.MaxUint32), SaturatingAdd32(math.MaxUint32, 1))
	assert.Equal(t, uint32(math.MaxUint32), SaturatingAdd32(math.MaxUint32, math.MaxUint32))
	assert.Equal(t, uint32(math.MaxUint32), SaturatingAdd32(math.MaxUint32, 0))
}

func TestSaturatingMul32(t *testing.T) {
	assert.Equal(t, uint32(6), SaturatingMul32(2, 3))
	assert.Equal(t, uint32(0), SaturatingMul32(math.MaxUint32, 0))
	assert.Equal(t, uint32(math.MaxUint32), SaturatingMul32(math.MaxUint32, 2))
	assert.Equal(t, uint32(math.MaxUint32), SaturatingMul32(math.MaxUint32, math.MaxUint32))
}

func TestSaturatingAdd64(t *testing.T) {
	assert.Equal(t, uint64(3), SaturatingAdd64(1, 2))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd64(math.MaxUint64, 1))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd64(1, math.MaxUint64))
}

func TestSaturatingMul64(t *testing.T) {
	assert.Equal(t, uint64(6), SaturatingMul64(2, 3))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingMul64(math.MaxUint64, 2))
}

func TestWeightAdd(t *testing.T) {
	assert.Equal(t, Weight(5), Weight(2).Add(3))
	assert.Equal(t, MaxWeight, MaxWeight.Add(1))
	assert.True(t, Weight(0).IsZero())
	assert.False(t, Weight(1).IsZero())
}
