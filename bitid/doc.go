// Package bitid implements the verifier side of the BitID
// challenge-response protocol: building challenge URIs, parsing and
// validating them against a callback, and checking a returned
// (address, signature, uri) triple against the bound challenge.
//
// The package issues challenges and verifies responses; it never
// touches a private key and never talks to a blockchain. HTTP
// handling, nonce persistence and QR-code rendering are left to the
// embedding application.
package bitid

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
