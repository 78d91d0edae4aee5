// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/orbisnetwork/orbis/orbis"

// RewardPools provides the reward pool values for an era and a period.
// Both methods are pure: no external state, no clock, no randomness.
// They are safe to call repeatedly for estimation or display.
type RewardPools interface {
	// StakerAndDAppRewardPools returns the staker reward pool and the dApp
	// reward pool for an era. The staker pool is dynamic and depends on the
	// total value staked; the mapping must be deterministic, monotonic and
	// total.
	StakerAndDAppRewardPools(totalStaked *orbis.Balance) (staker, dapp *orbis.Balance)

	// BonusRewardPool returns the bonus reward pool for a period. It does
	// not depend on the stake amount.
	BonusRewardPool() *orbis.Balance
}

// StakingRewardHandler computes reward pools and pays rewards out via an
// external ledger. A is the account identifier type of the surrounding
// system.
type StakingRewardHandler[A comparable] interface {
	RewardPools

	// PayoutReward attempts to credit reward to beneficiary. The credit is
	// atomic: on error nothing has been transferred. Retry policy belongs
	// to the caller.
	PayoutReward(beneficiary A, reward *orbis.Balance) error
}

// FundsLedger is the external balance ledger consumed by reward payout.
// The ledger's failure modes (frozen account, capacity exceeded, ...) are
// opaque to this package beyond the returned error, and a failed deposit
// must leave the beneficiary's balance untouched.
type FundsLedger[A comparable] interface {
	Deposit(beneficiary A, amount *orbis.Balance) error
}
