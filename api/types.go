// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"github.com/orbisnetwork/orbis/scheduler"
	"github.com/orbisnetwork/orbis/staking"
)

// CycleLayout is the derived time layout of the chain.
type CycleLayout struct {
	PeriodsPerCycle              uint32 `json:"periodsPerCycle"`
	ErasPerVotingSubperiod       uint32 `json:"erasPerVotingSubperiod"`
	ErasPerBuildAndEarnSubperiod uint32 `json:"erasPerBuildAndEarnSubperiod"`
	BlocksPerEra                 uint32 `json:"blocksPerEra"`
	PeriodInEraLengths           uint32 `json:"periodInEraLengths"`
	CycleInEraLengths            uint32 `json:"cycleInEraLengths"`
	BlocksPerCycle               uint32 `json:"blocksPerCycle"`
	BuildAndEarnErasPerCycle     uint32 `json:"buildAndEarnErasPerCycle"`
	ErasPerPeriod                uint32 `json:"erasPerPeriod"`
	ErasPerCycle                 uint32 `json:"erasPerCycle"`
}

func cycleLayoutOf(cfg staking.CycleConfig) *CycleLayout {
	return &CycleLayout{
		PeriodsPerCycle:              uint32(cfg.PeriodsPerCycle),
		ErasPerVotingSubperiod:       uint32(cfg.ErasPerVotingSubperiod),
		ErasPerBuildAndEarnSubperiod: uint32(cfg.ErasPerBuildAndEarnSubperiod),
		BlocksPerEra:                 uint32(cfg.BlocksPerEra),
		PeriodInEraLengths:           uint32(cfg.PeriodInEraLengths()),
		CycleInEraLengths:            uint32(cfg.CycleInEraLengths()),
		BlocksPerCycle:               uint32(cfg.BlocksPerCycle()),
		BuildAndEarnErasPerCycle:     uint32(cfg.BuildAndEarnErasPerCycle()),
		ErasPerPeriod:                uint32(cfg.ErasPerPeriod()),
		ErasPerCycle:                 uint32(cfg.ErasPerCycle()),
	}
}

// ProtocolState is the current position inside the cycle.
type ProtocolState struct {
	Era                   uint32 `json:"era"`
	Period                uint32 `json:"period"`
	Subperiod             string `json:"subperiod"`
	NextEraStart          uint32 `json:"nextEraStart"`
	NextSubperiodStartEra uint32 `json:"nextSubperiodStartEra"`
}

func protocolStateOf(state *scheduler.ProtocolState) *ProtocolState {
	return &ProtocolState{
		Era:                   uint32(state.Era),
		Period:                uint32(state.Period),
		Subperiod:             state.Subperiod.String(),
		NextEraStart:          uint32(state.NextEraStart),
		NextSubperiodStartEra: uint32(state.NextSubperiodStartEra),
	}
}

// EraInfo is the record of a finalized era.
type EraInfo struct {
	Era        uint32 `json:"era"`
	Period     uint32 `json:"period"`
	Subperiod  string `json:"subperiod"`
	StakerPool string `json:"stakerPool"`
	DAppPool   string `json:"dappPool"`
}

func eraInfoOf(info *scheduler.EraInfo) *EraInfo {
	return &EraInfo{
		Era:        uint32(info.Era),
		Period:     uint32(info.Period),
		Subperiod:  info.Subperiod.String(),
		StakerPool: info.StakerPool.Dec(),
		DAppPool:   info.DAppPool.Dec(),
	}
}

// RewardEstimate is the reward pool estimate for a hypothetical total stake.
type RewardEstimate struct {
	StakerPool string `json:"stakerPool"`
	DAppPool   string `json:"dappPool"`
	BonusPool  string `json:"bonusPool"`
}
