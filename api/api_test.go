// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbisnetwork/orbis/inflation"
	"github.com/orbisnetwork/orbis/kv"
	"github.com/orbisnetwork/orbis/orbis"
	"github.com/orbisnetwork/orbis/scheduler"
	"github.com/orbisnetwork/orbis/staking"
)

type constMeter struct {
	staked *orbis.Balance
}

func (m constMeter) TotalValueStaked() *orbis.Balance { return m.staked }

func testCycleConfig() staking.CycleConfig {
	return staking.CycleConfig{
		PeriodsPerCycle:              2,
		ErasPerVotingSubperiod:       3,
		ErasPerBuildAndEarnSubperiod: 4,
		BlocksPerEra:                 100,
	}
}

func testPools(t *testing.T) staking.RewardPools {
	t.Helper()
	return inflation.New[orbis.AccountID](inflation.Params{
		TotalIssuance:        orbis.NewBalance(1000),
		BaseStakerPool:       orbis.NewBalance(100),
		AdjustableStakerPool: orbis.NewBalance(200),
		DAppPool:             orbis.NewBalance(50),
		BonusPool:            orbis.NewBalance(30),
		IdealStakingRate:     inflation.RateDenominator,
	}, nil)
}

// newTestAPI builds the router over a fresh scheduler advanced past the
// first era transition, so /eras/1 resolves.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := kv.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := testCycleConfig()
	pools := testPools(t)
	sched, err := scheduler.New(cfg, pools, constMeter{orbis.NewBalance(500)}, nil, scheduler.NewStore(db))
	require.NoError(t, err)

	// voting subperiod is 300 blocks long, era 1 ends at block 300
	for n := orbis.BlockNumber(1); n <= 300; n++ {
		_, err := sched.OnBlock(n)
		require.NoError(t, err)
	}

	return New(cfg, pools, sched, Options{AllowedOrigins: "*"})
}

func get(t *testing.T, router http.Handler, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestGetCycle(t *testing.T) {
	router := newTestAPI(t)

	var layout CycleLayout
	require.Equal(t, http.StatusOK, get(t, router, "/cycle", &layout))

	assert.Equal(t, uint32(7), layout.PeriodInEraLengths)
	assert.Equal(t, uint32(14), layout.CycleInEraLengths)
	assert.Equal(t, uint32(1400), layout.BlocksPerCycle)
	assert.Equal(t, uint32(8), layout.BuildAndEarnErasPerCycle)
	assert.Equal(t, uint32(5), layout.ErasPerPeriod)
	assert.Equal(t, uint32(10), layout.ErasPerCycle)
}

func TestGetState(t *testing.T) {
	router := newTestAPI(t)

	var state ProtocolState
	require.Equal(t, http.StatusOK, get(t, router, "/state", &state))

	// block 300 rolled era 1 into the build&earn subperiod
	assert.Equal(t, uint32(2), state.Era)
	assert.Equal(t, uint32(1), state.Period)
	assert.Equal(t, "build&earn", state.Subperiod)
	assert.Equal(t, uint32(400), state.NextEraStart)
	assert.Equal(t, uint32(6), state.NextSubperiodStartEra)
}

func TestGetEra(t *testing.T) {
	router := newTestAPI(t)

	var info EraInfo
	require.Equal(t, http.StatusOK, get(t, router, "/eras/1", &info))

	assert.Equal(t, uint32(1), info.Era)
	assert.Equal(t, uint32(1), info.Period)
	assert.Equal(t, "voting", info.Subperiod)
	// staked 500 of ideal 1000: staker pool = 100 + 200/2
	assert.Equal(t, "200", info.StakerPool)
	assert.Equal(t, "50", info.DAppPool)
}

func TestGetEraNotFinalized(t *testing.T) {
	router := newTestAPI(t)

	var info EraInfo
	assert.Equal(t, http.StatusNotFound, get(t, router, "/eras/9", &info))
}

func TestGetEraBadNumber(t *testing.T) {
	router := newTestAPI(t)

	var info EraInfo
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/eras/abc", &info))
}

func TestEstimate(t *testing.T) {
	router := newTestAPI(t)

	var est RewardEstimate
	require.Equal(t, http.StatusOK, get(t, router, "/rewards/estimate?staked=1000", &est))

	// fully staked against the ideal: the whole adjustable pool is paid
	assert.Equal(t, "300", est.StakerPool)
	assert.Equal(t, "50", est.DAppPool)
	assert.Equal(t, "30", est.BonusPool)
}

func TestEstimateMissingParam(t *testing.T) {
	router := newTestAPI(t)

	var est RewardEstimate
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/rewards/estimate", &est))
}

func TestEstimateMalformedParam(t *testing.T) {
	router := newTestAPI(t)

	var est RewardEstimate
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/rewards/estimate?staked=0x10", &est))
}
