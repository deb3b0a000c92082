package secp256k1

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2020 Bernd Fix
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
	"testing"

	"github.com/bfix/bitid/math"
)

// buildSignature constructs a valid (r,s) pair for a given private
// factor 'd' and hash, following the textbook ECDSA signing equation
// directly (the verifier package has no signer of its own).
func buildSignature(d, hash *math.Int, k *math.Int) *Signature {
	r := nMod(MultBase(k).x)
	e := ConvertHash(hash.Bytes())
	ki := k.ModInverse(c.N)
	s := nMod(ki.Mul(nMod(r.Mul(d).Add(e))))
	return &Signature{R: r, S: s}
}

func TestSignVerifyRoundtrip(t *testing.T) {
	d := math.NewIntFromHex("1234567890ABCDEF1234567890ABCDEF1234567890ABCDEF1234567890ABCD")
	k := math.NewIntFromHex("FEDCBA0987654321FEDCBA0987654321FEDCBA0987654321FEDCBA09876543")
	hash := math.NewIntFromHex("AABBCCDDEEFF00112233445566778899AABBCCDDEEFF00112233445566778")

	pub := &PublicKey{Q: MultBase(d), IsCompressed: true}
	sig := buildSignature(d, hash, k)
	if !Verify(pub, hash.Bytes(), sig) {
		t.Fatal("valid signature failed to verify")
	}
	// tamper with 's' and expect rejection
	tampered := &Signature{R: sig.R, S: nMod(sig.S.Add(math.ONE))}
	if Verify(pub, hash.Bytes(), tampered) {
		t.Fatal("tampered signature unexpectedly verified")
	}
}

func TestConvertHash(t *testing.T) {
	i := math.NewIntFromHex("AABBCCDDEEFF00112233445566778899AABBCCDDEEFF00112233445566778")
	h := i.Bytes()
	j := ConvertHash(h)
	if i.Cmp(j) != 0 {
		t.Fatal("ConvertHash failed")
	}
}

func TestNewSignatureFromBytesRejectsZero(t *testing.T) {
	b := make([]byte, 64)
	b[63] = 1 // r = 0, s = 1
	if _, err := NewSignatureFromBytes(b); err == nil {
		t.Fatal("expected error for zero r")
	}
}
