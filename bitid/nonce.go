package bitid

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
	"crypto/rand"
	"encoding/hex"

	"github.com/bfix/bitid/logger"
)

// NonceLen is the length of a generated nonce in hex characters (8
// bytes of entropy).
const NonceLen = 16

// GenerateNonce draws 8 bytes from a cryptographically strong source
// and returns their lowercase hex encoding. Unlike the mixed
// os.urandom/PRNG/clock source of earlier BitID implementations, this
// relies solely on the platform CSPRNG.
func GenerateNonce() string {
	buf := make([]byte, NonceLen/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// broken; there is no sane fallback for an auth nonce.
		logger.Printf(logger.CRITICAL, "[bitid] entropy source failed: %s\n", err.Error())
		panic(err)
	}
	return hex.EncodeToString(buf)
}
