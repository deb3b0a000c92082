// Package secp256k1 implements elliptic curve cryptography (ECDSA) based
// on curve "Secp256k1" and its use in Bitcoin message verification.
//
// The elliptic curve used for Bitcoin crypto ("Secp256k1") is a
// short-form Weierstrass curve of the form "E: y² = x³ + 7" over
// an underlying prime field of order "p". The parameter values used
// are defined in [http://www.secg.org/collateral/sec2_final.pdf]
// on page 15.
package secp256k1

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2019 Bernd Fix
//
// Gospel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gospel.  If not, see <http://www.gnu.org/licenses/>.
//----------------------------------------------------------------------
