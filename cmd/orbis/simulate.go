// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/holiman/uint256"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	pb "gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/orbisnetwork/orbis/api"
	"github.com/orbisnetwork/orbis/genesis"
	"github.com/orbisnetwork/orbis/inflation"
	"github.com/orbisnetwork/orbis/kv"
	"github.com/orbisnetwork/orbis/orbis"
	"github.com/orbisnetwork/orbis/scheduler"
	"github.com/orbisnetwork/orbis/staking"
)

// memLedger is an in-memory funds ledger used only for simulation.
type memLedger struct {
	balances map[orbis.AccountID]*orbis.Balance
}

func newMemLedger() *memLedger {
	return &memLedger{balances: make(map[orbis.AccountID]*orbis.Balance)}
}

func (l *memLedger) Deposit(beneficiary orbis.AccountID, amount *orbis.Balance) error {
	cur, ok := l.balances[beneficiary]
	if !ok {
		cur = new(orbis.Balance)
	}
	l.balances[beneficiary] = orbis.SaturatingAddBalance(cur, amount)
	return nil
}

// fixedStake is a stake meter reporting a constant total.
type fixedStake struct {
	total *orbis.Balance
}

func (m fixedStake) TotalValueStaked() *orbis.Balance {
	return new(orbis.Balance).Set(m.total)
}

// countingObserver counts era notifications, standing in for the real
// listeners a full node would register.
type countingObserver struct {
	notified int
}

func (o *countingObserver) BlockBeforeNewEra(orbis.EraNumber) orbis.Weight {
	o.notified++
	return 1
}

func simulateAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	withMetrics := initMetrics(ctx)

	staked, err := uint256.FromDecimal(ctx.String(stakedFlag.Name))
	if err != nil {
		return errors.WithMessage(err, "staked")
	}

	db, err := kv.NewMem()
	if err != nil {
		return err
	}
	defer db.Close()

	ledger := newMemLedger()
	engine := inflation.New[orbis.AccountID](cfg.InflationParams(), ledger)
	observer := &countingObserver{}

	sched, err := scheduler.New(
		cfg.CycleConfig(),
		engine,
		fixedStake{total: staked},
		staking.ObserverChain{observer},
		scheduler.NewStore(db),
	)
	if err != nil {
		return err
	}

	blocks := ctx.Uint64(blocksFlag.Name)
	bar := pb.New64(int64(blocks))
	showBar := isatty.IsTerminal(os.Stdout.Fd())
	if showBar {
		bar.Start()
	}

	var consumed orbis.Weight
	for n := uint64(1); n <= blocks; n++ {
		w, err := sched.OnBlock(orbis.BlockNumber(n))
		if err != nil {
			return err
		}
		consumed = consumed.Add(w)
		if showBar {
			bar.Increment()
		}
	}
	if showBar {
		bar.Finish()
	}

	state := sched.State()
	fmt.Printf("simulated %d blocks\n", blocks)
	fmt.Printf("  era:                 %d\n", state.Era)
	fmt.Printf("  period:              %d\n", state.Period)
	fmt.Printf("  subperiod:           %s\n", state.Subperiod)
	fmt.Printf("  next era start:      %d\n", state.NextEraStart)
	fmt.Printf("  observer calls:      %d\n", observer.notified)
	fmt.Printf("  weight consumed:     %d\n", consumed)

	// Demonstrate a payout with the pools of the last finalized era.
	if info, err := sched.EraInfoOf(state.Era - 1); err == nil && info != nil {
		beneficiary := orbis.BytesToAccountID([]byte("simulation-beneficiary"))
		if err := engine.PayoutReward(beneficiary, info.StakerPool); err != nil {
			return err
		}
		fmt.Printf("  sample payout:       %s -> %s\n", info.StakerPool.Dec(), beneficiary)
	}

	if addr := ctx.String(apiAddrFlag.Name); addr != "" {
		return serveAPI(addr, ctx.String(apiCorsFlag.Name), withMetrics, cfg, engine, sched)
	}
	return nil
}

// serveAPI blocks until interrupted.
func serveAPI(
	addr, corsOrigins string,
	withMetrics bool,
	cfg *genesis.Config,
	engine staking.RewardPools,
	sched *scheduler.Scheduler,
) error {
	handler := api.New(cfg.CycleConfig(), engine, sched, api.Options{
		AllowedOrigins: corsOrigins,
		EnableMetrics:  withMetrics,
	})
	srv := &http.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("serving API on http://%s (ctrl-c to quit)\n", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
