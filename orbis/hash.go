// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package orbis

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Bytes32 is a 32-byte array, mostly used as storage key or hash output.
type Bytes32 [32]byte

// String implements the stringer interface.
func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

// Bytes returns the byte slice form of Bytes32.
func (b Bytes32) Bytes() []byte {
	return b[:]
}

// Blake2b computes the blake2b-256 checksum of the concatenation of data.
func Blake2b(data ...[]byte) (h Bytes32) {
	if len(data) == 1 {
		// the quick version
		return blake2b.Sum256(data[0])
	}
	state, _ := blake2b.New256(nil)
	for _, b := range data {
		state.Write(b)
	}
	state.Sum(h[:0])
	return
}
