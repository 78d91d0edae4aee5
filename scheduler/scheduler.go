// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package scheduler drives era and period transitions. It consults the
// cycle configuration every block, queries the reward engine at era
// boundaries, dispatches the observer protocol and persists the resulting
// protocol state.
//
// Everything in this package is deterministic and replay-safe: given the
// same genesis state and block sequence, every node computes bit-identical
// protocol states.
package scheduler

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/orbisnetwork/orbis/log"
	"github.com/orbisnetwork/orbis/metrics"
	"github.com/orbisnetwork/orbis/orbis"
	"github.com/orbisnetwork/orbis/staking"
)

var (
	logger = log.WithContext("pkg", "scheduler")

	metricEraTransitions    = metrics.Counter("scheduler_era_transitions_total")
	metricPeriodTransitions = metrics.Counter("scheduler_period_transitions_total")
	metricCurrentEra        = metrics.Gauge("scheduler_current_era")
	metricCurrentPeriod     = metrics.Gauge("scheduler_current_period")
)

// eraInfoCacheSize bounds the in-memory cache of finalized era records.
const eraInfoCacheSize = 256

// StakeMeter reports the total value staked, owned by the surrounding
// staking ledger.
type StakeMeter interface {
	TotalValueStaked() *orbis.Balance
}

// Scheduler owns the protocol state machine.
type Scheduler struct {
	cfg       staking.CycleConfig
	pools     staking.RewardPools
	meter     StakeMeter
	observers staking.EraObserver
	store     *Store

	state ProtocolState
	cache *lru.Cache
}

// GenesisState returns the protocol state active at the given start block:
// the first era of the first period, in the voting subperiod.
func GenesisState(cfg staking.CycleConfig, start orbis.BlockNumber) ProtocolState {
	return ProtocolState{
		Era:                   1,
		Period:                1,
		Subperiod:             staking.Voting,
		NextEraStart:          orbis.BlockNumber(orbis.SaturatingAdd32(uint32(start), uint32(votingBlocks(cfg)))),
		NextSubperiodStartEra: 2,
	}
}

// votingBlocks is the block length of the voting subperiod.
func votingBlocks(cfg staking.CycleConfig) orbis.BlockNumber {
	return orbis.BlockNumber(orbis.SaturatingMul32(
		uint32(cfg.ErasPerVotingSubperiod),
		uint32(cfg.BlocksPerEra),
	))
}

// New creates a scheduler. The persisted protocol state is resumed when
// present, otherwise genesis state for start block 0 is written.
// Observers may be nil, which is equivalent to staking.NoopObserver.
func New(
	cfg staking.CycleConfig,
	pools staking.RewardPools,
	meter StakeMeter,
	observers staking.EraObserver,
	store *Store,
) (*Scheduler, error) {
	if observers == nil {
		observers = staking.NoopObserver{}
	}

	state, err := store.LoadState()
	if err != nil {
		return nil, err
	}
	if state == nil {
		genesis := GenesisState(cfg, 0)
		if err := store.SaveState(&genesis); err != nil {
			return nil, err
		}
		state = &genesis
		logger.Info("initialized protocol state",
			"era", genesis.Era, "period", genesis.Period, "nextEraStart", genesis.NextEraStart)
	}

	cache, err := lru.New(eraInfoCacheSize)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cfg:       cfg,
		pools:     pools,
		meter:     meter,
		observers: observers,
		store:     store,
		state:     *state,
		cache:     cache,
	}, nil
}

// State returns a copy of the current protocol state.
func (s *Scheduler) State() ProtocolState {
	return s.state
}

// OnBlock advances the state machine for block n and returns the weight
// consumed by observer dispatch and transitions.
//
// In the block right before a new era, every observer is notified once, in
// fixed order. In the first block of a new era the transition is applied:
// the ending era's reward pools are finalized and recorded, and subperiod
// and period boundaries are rolled when reached.
func (s *Scheduler) OnBlock(n orbis.BlockNumber) (orbis.Weight, error) {
	var consumed orbis.Weight

	if next, ok := s.blockBeforeNewEra(n); ok {
		consumed = s.observers.BlockBeforeNewEra(next)
	}

	if n == s.state.NextEraStart {
		if err := s.transition(n); err != nil {
			return consumed, err
		}
	}
	return consumed, nil
}

// blockBeforeNewEra reports whether n is the last block of the current era,
// and if so which era is about to start. When the era start has saturated
// to the clamp it is its own predecessor; the transition takes precedence
// so observers are still notified at most once per era.
func (s *Scheduler) blockBeforeNewEra(n orbis.BlockNumber) (orbis.EraNumber, bool) {
	if n == s.state.NextEraStart {
		return 0, false
	}
	if orbis.SaturatingAdd32(uint32(n), 1) == uint32(s.state.NextEraStart) {
		return s.state.Era + 1, true
	}
	return 0, false
}

// transition finalizes the ending era and advances era, subperiod and
// period counters.
func (s *Scheduler) transition(n orbis.BlockNumber) error {
	staker, dapp := s.pools.StakerAndDAppRewardPools(s.meter.TotalValueStaked())
	info := &EraInfo{
		Era:        s.state.Era,
		Period:     s.state.Period,
		Subperiod:  s.state.Subperiod,
		StakerPool: staker,
		DAppPool:   dapp,
	}

	next := s.state
	next.Era = orbis.EraNumber(orbis.SaturatingAdd32(uint32(next.Era), 1))

	periodRolled := false
	switch next.Subperiod {
	case staking.Voting:
		// The whole voting subperiod advanced the era counter once;
		// build&earn eras follow one era length at a time.
		next.Subperiod = staking.BuildAndEarn
		next.NextSubperiodStartEra = orbis.EraNumber(orbis.SaturatingAdd32(
			uint32(next.Era),
			uint32(s.cfg.ErasPerBuildAndEarnSubperiod),
		))
		next.NextEraStart = orbis.BlockNumber(orbis.SaturatingAdd32(uint32(n), uint32(s.cfg.BlocksPerEra)))

	case staking.BuildAndEarn:
		if next.Era >= next.NextSubperiodStartEra {
			periodRolled = true
			next.Period = orbis.PeriodNumber(orbis.SaturatingAdd32(uint32(next.Period), 1))
			next.Subperiod = staking.Voting
			next.NextSubperiodStartEra = orbis.EraNumber(orbis.SaturatingAdd32(uint32(next.Era), 1))
			next.NextEraStart = orbis.BlockNumber(orbis.SaturatingAdd32(uint32(n), uint32(votingBlocks(s.cfg))))
		} else {
			next.NextEraStart = orbis.BlockNumber(orbis.SaturatingAdd32(uint32(n), uint32(s.cfg.BlocksPerEra)))
		}
	}

	if err := s.store.SaveTransition(&next, info); err != nil {
		return errors.WithMessage(err, "era transition")
	}
	s.state = next
	s.cache.Add(info.Era, info)

	metricEraTransitions.Add(1)
	metricCurrentEra.Set(int64(next.Era))
	metricCurrentPeriod.Set(int64(next.Period))
	logger.Info("era transition",
		"block", n,
		"era", next.Era,
		"period", next.Period,
		"subperiod", next.Subperiod,
		"stakerPool", info.StakerPool.Dec(),
		"dappPool", info.DAppPool.Dec(),
	)

	if periodRolled {
		metricPeriodTransitions.Add(1)
		logger.Info("period transition",
			"period", next.Period,
			"bonusPool", s.pools.BonusRewardPool().Dec(),
		)
	}
	return nil
}

// EraInfoOf returns the record of a finalized era, consulting the cache
// before the store. Nil is returned for eras without a record.
func (s *Scheduler) EraInfoOf(era orbis.EraNumber) (*EraInfo, error) {
	if cached, ok := s.cache.Get(era); ok {
		return cached.(*EraInfo), nil
	}
	info, err := s.store.LoadEraInfo(era)
	if err != nil {
		return nil, err
	}
	if info != nil {
		s.cache.Add(era, info)
	}
	return info, nil
}
