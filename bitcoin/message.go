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

// msgHdr is the fixed preamble every Bitcoin-signed message is framed
// with before hashing, as defined by Bitcoin Core's "Signed Message"
// convention.
var msgHdr = []byte("Bitcoin Signed Message:\n")

// FormatMessageForSigning reproduces the exact byte sequence a wallet
// hashes when it produces (or a verifier checks) a "Bitcoin Signed
// Message": a length-prefixed header followed by a var_int-prefixed
// message payload.
func FormatMessageForSigning(msg string) []byte {
	var buf []byte
	buf = append(buf, byte(len(msgHdr)))
	buf = append(buf, msgHdr...)
	buf = append(buf, varInt(len(msg))...)
	buf = append(buf, []byte(msg)...)
	return buf
}

// SignedMessageHash returns the double-SHA256 digest of the framed
// message, the value that is actually signed/verified.
func SignedMessageHash(msg string) []byte {
	return Hash256(FormatMessageForSigning(msg))
}

// varInt encodes n as a Bitcoin compact-size integer.
func varInt(n int) []byte {
	switch {
	case n < 0xfd:
		return []byte{byte(n)}
	case n <= 0xffff:
		return []byte{0xfd, byte(n), byte(n >> 8)}
	case n <= 0xffffffff:
		return []byte{0xfe, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	default:
		v := uint64(n)
		return []byte{0xff,
			byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
			byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
		}
	}
}
