// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package scheduler

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/orbisnetwork/orbis/kv"
	"github.com/orbisnetwork/orbis/orbis"
	"github.com/orbisnetwork/orbis/staking"
)

// ProtocolState is the persisted position of the chain inside the cycle.
// It is advanced exclusively by the scheduler, one era transition at a time.
type ProtocolState struct {
	// Era is the currently active era.
	Era orbis.EraNumber
	// Period is the currently active period.
	Period orbis.PeriodNumber
	// Subperiod is the currently active subperiod.
	Subperiod staking.Subperiod
	// NextEraStart is the block at which the next era becomes active.
	NextEraStart orbis.BlockNumber
	// NextSubperiodStartEra is the era at which the next subperiod begins.
	NextSubperiodStartEra orbis.EraNumber
}

// EraInfo records the reward pools finalized when an era ended.
type EraInfo struct {
	Era        orbis.EraNumber
	Period     orbis.PeriodNumber
	Subperiod  staking.Subperiod
	StakerPool *orbis.Balance
	DAppPool   *orbis.Balance
}

var (
	stateBucket      = kv.Bucket("sched-")
	protocolStateKey = orbis.Blake2b([]byte("protocol-state"))
	eraInfoPrefix    = []byte("era-info")
)

func eraInfoKey(era orbis.EraNumber) orbis.Bytes32 {
	var num [4]byte
	binary.BigEndian.PutUint32(num[:], uint32(era))
	return orbis.Blake2b(eraInfoPrefix, num[:])
}

// Store persists protocol state and era records in a kv store. All records
// live under the scheduler's own bucket so the store can share a database
// with other components.
type Store struct {
	db kv.GetPutter
}

// NewStore creates a store over db.
func NewStore(db kv.GetPutter) *Store {
	return &Store{db: stateBucket.NewStore(db)}
}

// LoadState returns the persisted protocol state, or nil when none was
// saved yet.
func (s *Store) LoadState() (*ProtocolState, error) {
	data, err := s.db.Get(protocolStateKey.Bytes())
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load protocol state")
	}
	var state ProtocolState
	if err := rlp.DecodeBytes(data, &state); err != nil {
		return nil, errors.Wrap(err, "decode protocol state")
	}
	return &state, nil
}

// SaveTransition atomically persists the post-transition protocol state and
// the record of the era that just ended. Either both are written or neither.
func (s *Store) SaveTransition(state *ProtocolState, info *EraInfo) error {
	stateData, err := rlp.EncodeToBytes(state)
	if err != nil {
		return errors.Wrap(err, "encode protocol state")
	}
	infoData, err := rlp.EncodeToBytes(info)
	if err != nil {
		return errors.Wrap(err, "encode era info")
	}

	batch := s.db.NewBatch()
	if err := batch.Put(protocolStateKey.Bytes(), stateData); err != nil {
		return err
	}
	if err := batch.Put(eraInfoKey(info.Era).Bytes(), infoData); err != nil {
		return err
	}
	return errors.Wrap(batch.Write(), "write transition")
}

// SaveState persists the protocol state alone.
func (s *Store) SaveState(state *ProtocolState) error {
	data, err := rlp.EncodeToBytes(state)
	if err != nil {
		return errors.Wrap(err, "encode protocol state")
	}
	return s.db.Put(protocolStateKey.Bytes(), data)
}

// LoadEraInfo returns the record of a finalized era, or nil when the era has
// no record.
func (s *Store) LoadEraInfo(era orbis.EraNumber) (*EraInfo, error) {
	data, err := s.db.Get(eraInfoKey(era).Bytes())
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load era info")
	}
	var info EraInfo
	if err := rlp.DecodeBytes(data, &info); err != nil {
		return nil, errors.Wrap(err, "decode era info")
	}
	return &info, nil
}
