// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package api exposes a read-only HTTP surface over the cycle layout, the
// protocol state and reward pool estimation. The API never mutates state.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/orbisnetwork/orbis/metrics"
	"github.com/orbisnetwork/orbis/orbis"
	"github.com/orbisnetwork/orbis/scheduler"
	"github.com/orbisnetwork/orbis/staking"
)

// Options configures the API router.
type Options struct {
	AllowedOrigins string
	EnableMetrics  bool
}

// New returns the api router.
func New(
	cfg staking.CycleConfig,
	pools staking.RewardPools,
	sched *scheduler.Scheduler,
	opts Options,
) http.Handler {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	a := &api{cfg: cfg, pools: pools, sched: sched}

	router := mux.NewRouter()
	router.Path("/cycle").
		Methods(http.MethodGet).
		HandlerFunc(wrapHandlerFunc(a.handleGetCycle))
	router.Path("/state").
		Methods(http.MethodGet).
		HandlerFunc(wrapHandlerFunc(a.handleGetState))
	router.Path("/eras/{era}").
		Methods(http.MethodGet).
		HandlerFunc(wrapHandlerFunc(a.handleGetEra))
	router.Path("/rewards/estimate").
		Methods(http.MethodGet).
		HandlerFunc(wrapHandlerFunc(a.handleEstimate))
	if opts.EnableMetrics {
		if h := metrics.HTTPHandler(); h != nil {
			router.Path("/metrics").Handler(h)
		}
	}

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet}),
	)(router)
}

type api struct {
	cfg   staking.CycleConfig
	pools staking.RewardPools
	sched *scheduler.Scheduler
}

func (a *api) handleGetCycle(w http.ResponseWriter, _ *http.Request) error {
	return respondJSON(w, cycleLayoutOf(a.cfg))
}

func (a *api) handleGetState(w http.ResponseWriter, _ *http.Request) error {
	state := a.sched.State()
	return respondJSON(w, protocolStateOf(&state))
}

func (a *api) handleGetEra(w http.ResponseWriter, req *http.Request) error {
	raw := mux.Vars(req)["era"]
	era, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return badRequest(errors.WithMessage(err, "era"))
	}
	info, err := a.sched.EraInfoOf(orbis.EraNumber(era))
	if err != nil {
		return err
	}
	if info == nil {
		return notFound(errors.Errorf("era %d not finalized", era))
	}
	return respondJSON(w, eraInfoOf(info))
}

func (a *api) handleEstimate(w http.ResponseWriter, req *http.Request) error {
	raw := req.URL.Query().Get("staked")
	if raw == "" {
		return badRequest(errors.New("staked: missing"))
	}
	staked, err := uint256.FromDecimal(raw)
	if err != nil {
		return badRequest(errors.WithMessage(err, "staked"))
	}
	staker, dapp := a.pools.StakerAndDAppRewardPools(staked)
	return respondJSON(w, &RewardEstimate{
		StakerPool: staker.Dec(),
		DAppPool:   dapp.Dec(),
		BonusPool:  a.pools.BonusRewardPool().Dec(),
	})
}
