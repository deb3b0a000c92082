package bitcoin

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

import (
	"github.com/bfix/bitid/secp256k1"
)

// address version bytes for P2PKH encoding
const (
	VersionMain = byte(0)
	VersionTest = byte(111)
)

// MakeAddress computes a P2PKH address from a public key for the
// "real" Bitcoin network.
func MakeAddress(key *secp256k1.PublicKey) string {
	return buildAddr(key, VersionMain)
}

// MakeTestAddress computes a P2PKH address from a public key for the
// test network.
func MakeTestAddress(key *secp256k1.PublicKey) string {
	return buildAddr(key, VersionTest)
}

// buildAddr computes an address from public key using different
// (nested) hashes and a network version identifier.
func buildAddr(key *secp256k1.PublicKey, version byte) string {
	var addr []byte
	addr = append(addr, version)
	kh := Hash160(key.Bytes())
	addr = append(addr, kh...)
	cs := Hash256(addr)
	addr = append(addr, cs[:4]...)
	return Base58Encode(addr)
}

// AddressValid checks that a Base58Check-encoded address decodes
// cleanly, carries a matching checksum, and uses the version byte of
// the expected network (mainnet = 0, testnet = 111).
func AddressValid(addr string, isTestnet bool) bool {
	b, err := Base58Decode(addr)
	if err != nil || len(b) != 25 {
		return false
	}
	payload, checksum := b[:21], b[21:]
	want := Hash256(payload)
	for i := 0; i < 4; i++ {
		if checksum[i] != want[i] {
			return false
		}
	}
	expect := VersionMain
	if isTestnet {
		expect = VersionTest
	}
	return payload[0] == expect
}
