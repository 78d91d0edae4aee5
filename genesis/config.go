// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis loads and validates the deployment configuration: the
// four cycle constants and the inflation parameters. The constants are
// immutable for the lifetime of a running chain; changing them requires a
// coordinated migration.
package genesis

import (
	"os"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/orbisnetwork/orbis/inflation"
	"github.com/orbisnetwork/orbis/orbis"
	"github.com/orbisnetwork/orbis/staking"
)

// Amount is a balance in a config file, written as a decimal string.
type Amount struct {
	*uint256.Int
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := uint256.FromDecimal(raw)
	if err != nil {
		return errors.Wrapf(err, "invalid amount %q", raw)
	}
	a.Int = v
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (a Amount) MarshalYAML() (any, error) {
	if a.Int == nil {
		return "0", nil
	}
	return a.Dec(), nil
}

// CycleParams are the four base time constants. All must be at least 1.
type CycleParams struct {
	PeriodsPerCycle              uint32 `yaml:"periodsPerCycle"`
	ErasPerVotingSubperiod       uint32 `yaml:"erasPerVotingSubperiod"`
	ErasPerBuildAndEarnSubperiod uint32 `yaml:"erasPerBuildAndEarnSubperiod"`
	BlocksPerEra                 uint32 `yaml:"blocksPerEra"`
}

// InflationParams are the reward pool parameters.
type InflationParams struct {
	TotalIssuance        Amount `yaml:"totalIssuance"`
	BaseStakerPool       Amount `yaml:"baseStakerPool"`
	AdjustableStakerPool Amount `yaml:"adjustableStakerPool"`
	DAppPool             Amount `yaml:"dappPool"`
	BonusPool            Amount `yaml:"bonusPool"`
	// IdealStakingRate in parts of inflation.RateDenominator.
	IdealStakingRate uint64 `yaml:"idealStakingRate"`
}

// Config is the full deployment configuration.
type Config struct {
	Cycle     CycleParams     `yaml:"cycle"`
	Inflation InflationParams `yaml:"inflation"`
}

// Parse decodes and validates a config document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse genesis config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis config")
	}
	return Parse(data)
}

// Validate enforces the deployment preconditions. A zero cycle constant is
// a configuration defect that must be rejected here; the calculator itself
// does not re-validate.
func (c *Config) Validate() error {
	switch {
	case c.Cycle.PeriodsPerCycle < 1:
		return errors.New("periodsPerCycle must be at least 1")
	case c.Cycle.ErasPerVotingSubperiod < 1:
		return errors.New("erasPerVotingSubperiod must be at least 1")
	case c.Cycle.ErasPerBuildAndEarnSubperiod < 1:
		return errors.New("erasPerBuildAndEarnSubperiod must be at least 1")
	case c.Cycle.BlocksPerEra < 1:
		return errors.New("blocksPerEra must be at least 1")
	case c.Inflation.IdealStakingRate > inflation.RateDenominator:
		return errors.New("idealStakingRate exceeds the rate denominator")
	}
	return nil
}

// CycleConfig converts the cycle constants to the staking representation.
func (c *Config) CycleConfig() staking.CycleConfig {
	return staking.CycleConfig{
		PeriodsPerCycle:              orbis.PeriodNumber(c.Cycle.PeriodsPerCycle),
		ErasPerVotingSubperiod:       orbis.EraNumber(c.Cycle.ErasPerVotingSubperiod),
		ErasPerBuildAndEarnSubperiod: orbis.EraNumber(c.Cycle.ErasPerBuildAndEarnSubperiod),
		BlocksPerEra:                 orbis.BlockNumber(c.Cycle.BlocksPerEra),
	}
}

// InflationParams converts the reward parameters to the engine representation.
func (c *Config) InflationParams() inflation.Params {
	return inflation.Params{
		TotalIssuance:        amountOrZero(c.Inflation.TotalIssuance),
		BaseStakerPool:       amountOrZero(c.Inflation.BaseStakerPool),
		AdjustableStakerPool: amountOrZero(c.Inflation.AdjustableStakerPool),
		DAppPool:             amountOrZero(c.Inflation.DAppPool),
		BonusPool:            amountOrZero(c.Inflation.BonusPool),
		IdealStakingRate:     c.Inflation.IdealStakingRate,
	}
}

func amountOrZero(a Amount) *orbis.Balance {
	if a.Int == nil {
		return new(orbis.Balance)
	}
	return new(orbis.Balance).Set(a.Int)
}
