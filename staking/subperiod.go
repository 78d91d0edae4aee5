// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

// Subperiod is one of the two ordered parts of a period.
type Subperiod uint8

const (
	// Voting is the first subperiod of a period. Stakers vote on dApps;
	// the era counter advances once over the whole subperiod.
	Voting Subperiod = iota
	// BuildAndEarn is the second subperiod. Rewards are accumulated era
	// by era until the period ends.
	BuildAndEarn
)

// Next returns the subperiod following s within the period cycle.
func (s Subperiod) Next() Subperiod {
	if s == Voting {
		return BuildAndEarn
	}
	return Voting
}

func (s Subperiod) String() string {
	switch s {
	case Voting:
		return "voting"
	case BuildAndEarn:
		return "build&earn"
	default:
		return "unknown"
	}
}
