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

// PublicKey is a Point on the elliptic curve: (x,y) = d*G, where
// 'G' is the base Point of the curve and 'd' is the (never-materialized
// here) private factor. BitID verification only ever reconstructs a
// PublicKey by recovery from a signature; it never derives one from a
// private key.
type PublicKey struct {
	Q            *Point
	IsCompressed bool
}

// Bytes returns the byte representation of the public key.
func (k *PublicKey) Bytes() []byte {
	return k.Q.Bytes(k.IsCompressed)
}

// PublicKeyFromBytes returns a public key from its wire representation.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	pnt, compr, err := NewPointFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Q: pnt, IsCompressed: compr}, nil
}
