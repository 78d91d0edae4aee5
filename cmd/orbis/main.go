// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	isatty "github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/orbisnetwork/orbis/genesis"
	"github.com/orbisnetwork/orbis/log"
	"github.com/orbisnetwork/orbis/metrics"
)

var (
	version   string
	gitCommit string
)

func fullVersion() string {
	if gitCommit == "" {
		return version + "-dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Orbis",
		Usage:     "dApp staking time accounting & reward distribution",
		Copyright: "2026 Orbis developers",
		Flags: []cli.Flag{
			verbosityFlag,
		},
		Commands: []cli.Command{
			{
				Name:   "layout",
				Usage:  "print the derived cycle layout for a config",
				Flags:  []cli.Flag{configFlag, presetFlag},
				Action: layoutAction,
			},
			{
				Name:  "simulate",
				Usage: "drive the era/period scheduler over a range of blocks",
				Flags: []cli.Flag{
					configFlag, presetFlag, blocksFlag, stakedFlag,
					apiAddrFlag, apiCorsFlag, metricsFlag,
				},
				Action: simulateAction,
			},
		},
		Before: func(ctx *cli.Context) error {
			initLogger(ctx.GlobalInt(verbosityFlag.Name))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(verbosity int) {
	log.SetLevel(log.FromLegacyLevel(verbosity))
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.SetHandler(log.NewTextHandler(os.Stderr))
	} else {
		log.SetHandler(log.NewJSONHandler(os.Stderr))
	}
}

// loadConfig resolves --config / --preset into a validated config.
func loadConfig(ctx *cli.Context) (*genesis.Config, error) {
	if path := ctx.String(configFlag.Name); path != "" {
		return genesis.Load(path)
	}
	switch preset := ctx.String(presetFlag.Name); preset {
	case "mainnet":
		return genesis.Mainnet(), nil
	case "devnet":
		return genesis.Devnet(), nil
	default:
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
}

func layoutAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	c := cfg.CycleConfig()

	fmt.Println("cycle layout:")
	fmt.Printf("  periods per cycle:            %d\n", c.PeriodsPerCycle)
	fmt.Printf("  eras per voting subperiod:    %d\n", c.ErasPerVotingSubperiod)
	fmt.Printf("  eras per build&earn:          %d\n", c.ErasPerBuildAndEarnSubperiod)
	fmt.Printf("  blocks per era:               %d\n", c.BlocksPerEra)
	fmt.Println("derived:")
	fmt.Printf("  period in era lengths:        %d\n", c.PeriodInEraLengths())
	fmt.Printf("  cycle in era lengths:         %d\n", c.CycleInEraLengths())
	fmt.Printf("  blocks per cycle:             %d\n", c.BlocksPerCycle())
	fmt.Printf("  build&earn eras per cycle:    %d\n", c.BuildAndEarnErasPerCycle())
	fmt.Printf("  eras per period:              %d\n", c.ErasPerPeriod())
	fmt.Printf("  eras per cycle:               %d\n", c.ErasPerCycle())
	return nil
}

func initMetrics(ctx *cli.Context) bool {
	if ctx.Bool(metricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		return true
	}
	return false
}
