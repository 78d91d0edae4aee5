// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/orbisnetwork/orbis/orbis"

// CycleConfig defines the nested time layout of dApp staking.
//
//   - A cycle is a time unit similar to a 'year'. It consists of one or more
//     periods. Inflation parameters are recalculated at the start of each cycle.
//   - A period consists of two subperiods, Voting followed by Build&Earn.
//     Its length is expressed in standard era lengths.
//   - An era is the basic time unit of the protocol. Reward pools for stakers
//     and dApps are finalized at the end of each era. Era length is expressed
//     in blocks.
//
// All four base constants must be at least 1. They are fixed at genesis;
// the calculator assumes the precondition holds and does not re-validate it.
// Every derived quantity is recomputed from the base constants on demand,
// never cached, and composed with saturating arithmetic.
type CycleConfig struct {
	// PeriodsPerCycle is how many periods there are in a cycle.
	PeriodsPerCycle orbis.PeriodNumber
	// ErasPerVotingSubperiod is for how many standard era lengths the voting
	// subperiod lasts.
	ErasPerVotingSubperiod orbis.EraNumber
	// ErasPerBuildAndEarnSubperiod is how many standard eras there are in the
	// build&earn subperiod.
	ErasPerBuildAndEarnSubperiod orbis.EraNumber
	// BlocksPerEra is how many blocks there are per standard era.
	BlocksPerEra orbis.BlockNumber
}

// PeriodInEraLengths is for how many standard era lengths a period lasts.
func (c CycleConfig) PeriodInEraLengths() orbis.EraNumber {
	return orbis.EraNumber(orbis.SaturatingAdd32(
		uint32(c.ErasPerVotingSubperiod),
		uint32(c.ErasPerBuildAndEarnSubperiod),
	))
}

// CycleInEraLengths is for how many standard era lengths a cycle lasts.
func (c CycleConfig) CycleInEraLengths() orbis.EraNumber {
	return orbis.EraNumber(orbis.SaturatingMul32(
		uint32(c.PeriodInEraLengths()),
		uint32(c.PeriodsPerCycle),
	))
}

// BlocksPerCycle is how many blocks there are per cycle.
func (c CycleConfig) BlocksPerCycle() orbis.BlockNumber {
	return orbis.BlockNumber(orbis.SaturatingMul32(
		uint32(c.BlocksPerEra),
		uint32(c.CycleInEraLengths()),
	))
}

// BuildAndEarnErasPerCycle is for how many standard era lengths all the
// build&earn subperiods in a cycle last.
func (c CycleConfig) BuildAndEarnErasPerCycle() orbis.EraNumber {
	return orbis.EraNumber(orbis.SaturatingMul32(
		uint32(c.ErasPerBuildAndEarnSubperiod),
		uint32(c.PeriodsPerCycle),
	))
}

// ErasPerPeriod is how many distinct eras there are in a single period.
//
// The whole voting subperiod spans several standard era lengths but advances
// the era counter exactly once, so a period contributes one era boundary more
// than its build&earn subperiod. This is intentionally not the same quantity
// as PeriodInEraLengths.
func (c CycleConfig) ErasPerPeriod() orbis.EraNumber {
	return orbis.EraNumber(orbis.SaturatingAdd32(
		uint32(c.ErasPerBuildAndEarnSubperiod),
		1,
	))
}

// ErasPerCycle is how many distinct eras there are in a cycle.
func (c CycleConfig) ErasPerCycle() orbis.EraNumber {
	return orbis.EraNumber(orbis.SaturatingMul32(
		uint32(c.ErasPerPeriod()),
		uint32(c.PeriodsPerCycle),
	))
}
