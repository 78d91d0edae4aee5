// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package inflation computes the protocol's reward pools and pays rewards
// out through the external funds ledger.
package inflation

import (
	"github.com/pkg/errors"

	"github.com/orbisnetwork/orbis/log"
	"github.com/orbisnetwork/orbis/metrics"
	"github.com/orbisnetwork/orbis/orbis"
	"github.com/orbisnetwork/orbis/staking"
)

var (
	logger = log.WithContext("pkg", "inflation")

	metricPayouts       = metrics.Counter("inflation_payouts_total")
	metricPayoutFailure = metrics.Counter("inflation_payout_failures_total")
)

// RateDenominator is the fixed-point denominator of staking rates.
// A rate of RateDenominator/5 means 20%.
const RateDenominator = 1_000_000_000

// Params are the per-deployment reward parameters. They are fixed at
// genesis and recalculated off-chain between cycles; the engine only
// consumes them.
type Params struct {
	// TotalIssuance is the total token issuance the staking rate is
	// measured against.
	TotalIssuance *orbis.Balance
	// BaseStakerPool is the part of the per-era staker pool that is paid
	// regardless of how much value is staked.
	BaseStakerPool *orbis.Balance
	// AdjustableStakerPool is the part of the per-era staker pool that
	// scales with the staking rate, up to IdealStakingRate.
	AdjustableStakerPool *orbis.Balance
	// DAppPool is the fixed per-era dApp reward pool.
	DAppPool *orbis.Balance
	// BonusPool is the fixed per-period bonus reward pool.
	BonusPool *orbis.Balance
	// IdealStakingRate is the staked/issuance ratio at which the
	// adjustable pool is paid in full, expressed in RateDenominator parts.
	IdealStakingRate uint64
}

// Engine derives reward pools from the inflation parameters and settles
// payouts on the funds ledger. It implements staking.StakingRewardHandler.
//
// Pool computation is pure arithmetic over the parameters and the input:
// no clock, no randomness, no external reads. Identical inputs produce
// identical pools on every node.
type Engine[A comparable] struct {
	params Params
	ledger staking.FundsLedger[A]
}

var _ staking.StakingRewardHandler[orbis.AccountID] = (*Engine[orbis.AccountID])(nil)

// New creates a reward engine over the given ledger.
func New[A comparable](params Params, ledger staking.FundsLedger[A]) *Engine[A] {
	return &Engine[A]{params: params, ledger: ledger}
}

// StakerAndDAppRewardPools returns the staker and dApp reward pools for an era.
//
// The staker pool is the base pool plus the adjustable pool scaled by
// min(1, stakedRatio/idealStakingRate). The scaling keeps the pool
// monotonic in the total value staked and saturates instead of
// overflowing.
func (e *Engine[A]) StakerAndDAppRewardPools(totalStaked *orbis.Balance) (*orbis.Balance, *orbis.Balance) {
	staker := orbis.SaturatingAddBalance(e.params.BaseStakerPool, e.adjustablePart(totalStaked))
	dapp := new(orbis.Balance).Set(e.params.DAppPool)
	return staker, dapp
}

// adjustablePart returns adjustable * min(1, totalStaked/idealStake) where
// idealStake = totalIssuance * idealStakingRate.
func (e *Engine[A]) adjustablePart(totalStaked *orbis.Balance) *orbis.Balance {
	idealStake := orbis.MulDivBalance(
		e.params.TotalIssuance,
		orbis.NewBalance(e.params.IdealStakingRate),
		orbis.NewBalance(RateDenominator),
	)
	// Degenerate parameters (zero issuance or rate) pay the adjustable
	// pool in full rather than dividing by zero.
	if idealStake.IsZero() || totalStaked.Cmp(idealStake) >= 0 {
		return new(orbis.Balance).Set(e.params.AdjustableStakerPool)
	}
	return orbis.MulDivBalance(e.params.AdjustableStakerPool, totalStaked, idealStake)
}

// BonusRewardPool returns the bonus reward pool for a period.
func (e *Engine[A]) BonusRewardPool() *orbis.Balance {
	return new(orbis.Balance).Set(e.params.BonusPool)
}

// PayoutReward attempts to credit reward to beneficiary.
//
// The credit is delegated to the funds ledger, whose deposit is atomic:
// on error nothing has been transferred. The error is surfaced to the
// caller; the engine never retries.
func (e *Engine[A]) PayoutReward(beneficiary A, reward *orbis.Balance) error {
	if err := e.ledger.Deposit(beneficiary, reward); err != nil {
		metricPayoutFailure.Add(1)
		logger.Warn("reward payout failed", "beneficiary", beneficiary, "reward", reward.Dec(), "error", err)
		return errors.WithMessage(err, "payout reward")
	}
	metricPayouts.Add(1)
	return nil
}
