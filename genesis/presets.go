// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import "github.com/holiman/uint256"

func amount(dec string) Amount {
	v, err := uint256.FromDecimal(dec)
	if err != nil {
		panic(err)
	}
	return Amount{v}
}

// Mainnet returns the mainnet deployment configuration.
// A cycle lasts roughly a year: 4 periods, each with a ~5.5 day voting
// subperiod and 81 build&earn eras of one day each.
func Mainnet() *Config {
	return &Config{
		Cycle: CycleParams{
			PeriodsPerCycle:              4,
			ErasPerVotingSubperiod:       8,
			ErasPerBuildAndEarnSubperiod: 81,
			BlocksPerEra:                 7200,
		},
		Inflation: InflationParams{
			TotalIssuance:        amount("8400000000000000000000000000"),
			BaseStakerPool:       amount("120000000000000000000000"),
			AdjustableStakerPool: amount("480000000000000000000000"),
			DAppPool:             amount("55000000000000000000000"),
			BonusPool:            amount("300000000000000000000000"),
			IdealStakingRate:     400_000_000, // 40%
		},
	}
}

// Devnet returns a configuration with short eras, handy for local
// simulation and tests.
func Devnet() *Config {
	return &Config{
		Cycle: CycleParams{
			PeriodsPerCycle:              2,
			ErasPerVotingSubperiod:       3,
			ErasPerBuildAndEarnSubperiod: 4,
			BlocksPerEra:                 100,
		},
		Inflation: InflationParams{
			TotalIssuance:        amount("1000000000"),
			BaseStakerPool:       amount("10000"),
			AdjustableStakerPool: amount("40000"),
			DAppPool:             amount("5000"),
			BonusPool:            amount("20000"),
			IdealStakingRate:     200_000_000, // 20%
		},
	}
}
