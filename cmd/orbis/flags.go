// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a genesis config file",
	}
	presetFlag = cli.StringFlag{
		Name:  "preset",
		Value: "devnet",
		Usage: "built-in config preset (mainnet|devnet), ignored when --config is set",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 2,
		Usage: "log verbosity (0-4)",
	}
	blocksFlag = cli.Uint64Flag{
		Name:  "blocks",
		Value: 2000,
		Usage: "number of blocks to simulate",
	}
	stakedFlag = cli.StringFlag{
		Name:  "staked",
		Value: "100000000",
		Usage: "total value staked during the simulation, decimal",
	}
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Usage: "when set, serve the read-only API on this address after the simulation",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "*",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enable prometheus metrics",
	}
)
