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
	"crypto/subtle"
	"errors"

	"github.com/bfix/bitid/math"
	"github.com/bfix/bitid/secp256k1"
)

// subtleAddrEqual compares two addresses without leaking a timing
// signal on where they first differ.
func subtleAddrEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// ErrSigRecoverFail is returned when a candidate point built from a
// compact signature's recovery id does not satisfy the curve equation
// or does not recover to a point of the expected order.
var ErrSigRecoverFail = errors.New("public key recovery failed")

// RecoverPublicKey reconstructs the public key used to produce sig over
// hash, given the recovery id carried in a compact signature.
//
// This runs the inverse of the ECDSA verification equation: candidate
// curve point R is rebuilt from sig.R (adjusted by recID's high bit)
// and the curve equation, with recID's low bit selecting the root of
// the correct parity; the public key follows as
//
//	Q = r⁻¹·(s·R - e·G) mod n
func RecoverPublicKey(recID byte, sig *secp256k1.Signature, hash []byte, compressed bool) (*secp256k1.PublicKey, error) {
	curve := secp256k1.GetCurve()
	n, p := curve.N, curve.P

	x := sig.R
	if recID&2 != 0 {
		x = x.Add(n)
	}
	if x.Cmp(p) >= 0 {
		return nil, ErrSigRecoverFail
	}
	y, ok := secp256k1.Solve(x)
	if !ok {
		return nil, ErrSigRecoverFail
	}
	if uint(recID&1) != y.Bit(0) {
		y = p.Sub(y)
	}
	r := secp256k1.NewPoint(x, y)
	if !r.IsOnCurve() {
		return nil, ErrSigRecoverFail
	}
	if !r.Mult(n).IsInf() {
		return nil, ErrSigRecoverFail
	}

	e := secp256k1.ConvertHash(hash).Mod(n)
	ei := math.ZERO.Sub(e).Mod(n)
	ri := sig.R.ModInverse(n)
	sRi := ri.Mul(sig.S).Mod(n)
	eiRi := ri.Mul(ei).Mod(n)

	q := secp256k1.MultBase(eiRi).Add(r.Mult(sRi))
	if q.IsInf() {
		return nil, ErrSigRecoverFail
	}
	key := &secp256k1.PublicKey{Q: q, IsCompressed: compressed}
	if !secp256k1.Verify(key, hash, sig) {
		return nil, ErrSigRecoverFail
	}
	return key, nil
}

// VerifyMessage checks that b64sig is a valid compact signature over
// msg recoverable to a public key whose P2PKH address on the given
// network equals addr, byte for byte.
func VerifyMessage(addr, b64sig, msg string, isTestnet bool) (bool, error) {
	cs, err := DecodeCompactSig(b64sig)
	if err != nil {
		return false, err
	}
	hash := SignedMessageHash(msg)
	key, err := RecoverPublicKey(cs.RecID, cs.Sig, hash, cs.Compressed)
	if err != nil {
		return false, err
	}
	got := MakeAddress(key)
	if isTestnet {
		got = MakeTestAddress(key)
	}
	return subtleAddrEqual(got, addr), nil
}
