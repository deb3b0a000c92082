package secp256k1

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
	"errors"

	"github.com/bfix/bitid/math"
)

// ErrSigInvalid is returned for a structurally malformed ECDSA signature.
var ErrSigInvalid = errors.New("invalid ECDSA signature")

// Signature is an ECDSA signature (r,s) on the curve.
type Signature struct {
	R, S *math.Int
}

// NewSignatureFromBytes parses a raw 64-byte (r||s) signature, each
// coordinate a 32-byte big-endian value in the range [1,n-1].
func NewSignatureFromBytes(b []byte) (sig *Signature, err error) {
	if len(b) != 64 {
		return nil, ErrSigInvalid
	}
	n := GetCurve().N
	r := math.NewIntFromBytes(b[:32])
	s := math.NewIntFromBytes(b[32:])
	if r.Equals(math.ZERO) || r.Cmp(n) >= 0 || s.Equals(math.ZERO) || s.Cmp(n) >= 0 {
		err = ErrSigInvalid
		return
	}
	return &Signature{r, s}, nil
}

// Verify a hash value against a public key.
// [http://www.nsa.gov/ia/_files/ecdsa.pdf, page 15f]
func Verify(key *PublicKey, hash []byte, sig *Signature) bool {
	// sanity checks for arguments
	if sig.R.Sign() == 0 || sig.S.Sign() == 0 {
		return false
	}
	if sig.R.Cmp(c.N) >= 0 || sig.S.Cmp(c.N) >= 0 {
		return false
	}
	// check signature
	e := ConvertHash(hash)
	w := sig.S.ModInverse(c.N)

	u1 := nMod(e.Mul(w))
	u2 := nMod(w.Mul(sig.R))

	p1 := MultBase(u1)
	p2 := key.Q.Mult(u2)
	if p1.x.Cmp(p2.x) == 0 {
		return false
	}
	p3 := p1.Add(p2)
	rr := nMod(p3.x)
	return rr.Cmp(sig.R) == 0
}

// ConvertHash converts a hash value to an integer suitable for use in
// the ECDSA equations, truncating it to the bit length of the curve
// order if necessary.
// [http://www.secg.org/download/aid-780/sec1-v2.pdf]
func ConvertHash(hash []byte) *math.Int {
	maxSize := (c.N.BitLen() + 7) / 8
	if len(hash) > maxSize {
		hash = hash[:maxSize]
	}
	return math.NewIntFromBytes(hash).Rsh(uint(maxSize*8 - c.N.BitLen()))
}
