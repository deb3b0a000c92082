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
	"encoding/base64"
	"errors"

	"github.com/bfix/bitid/secp256k1"
)

// ErrCompactSigLen is returned when a compact signature does not
// decode to exactly 65 bytes.
var ErrCompactSigLen = errors.New("compact signature must be 65 bytes")

// ErrCompactSigHeader is returned for a header byte outside the range
// reserved for recoverable P2PKH signatures.
var ErrCompactSigHeader = errors.New("unsupported compact signature header byte")

// CompactSig is a 65-byte recoverable ECDSA signature as produced by
// "signmessage": a header byte encoding the recovery id and key
// compression, followed by r and s.
type CompactSig struct {
	RecID      byte
	Compressed bool
	Sig        *secp256k1.Signature
}

// DecodeCompactSig parses a base64-encoded compact signature.
//
// Header byte ranges (see Bitcoin Core's message signing convention):
//
//	27-30: P2PKH, uncompressed key
//	31-34: P2PKH, compressed key
//
// Ranges beyond 34 (P2SH-P2WPKH, bech32 P2WPKH) are not meaningful for
// BitID, which only ever claims legacy P2PKH addresses.
func DecodeCompactSig(b64sig string) (*CompactSig, error) {
	raw, err := base64.StdEncoding.DecodeString(b64sig)
	if err != nil {
		return nil, err
	}
	if len(raw) != 65 {
		return nil, ErrCompactSigLen
	}
	hdr := raw[0]
	if hdr < 27 || hdr > 34 {
		return nil, ErrCompactSigHeader
	}
	compressed := hdr >= 31
	recID := hdr - 27
	if compressed {
		recID -= 4
	}
	sig, err := secp256k1.NewSignatureFromBytes(raw[1:])
	if err != nil {
		return nil, err
	}
	return &CompactSig{RecID: recID, Compressed: compressed, Sig: sig}, nil
}
