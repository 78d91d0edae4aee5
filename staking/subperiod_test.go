// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubperiodNext(t *testing.T) {
	assert.Equal(t, BuildAndEarn, Voting.Next())
	assert.Equal(t, Voting, BuildAndEarn.Next())
}

func TestSubperiodString(t *testing.T) {
	assert.Equal(t, "voting", Voting.String())
	assert.Equal(t, "build&earn", BuildAndEarn.String())
}
