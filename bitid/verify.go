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
	"github.com/bfix/bitid/bitcoin"
	"github.com/bfix/bitid/logger"
)

// AddressValid reports whether addr is a structurally valid Base58Check
// P2PKH address on the requested network.
func AddressValid(addr string, isTestnet bool) bool {
	return bitcoin.AddressValid(addr, isTestnet)
}

// SignatureValid checks that signature is a valid compact Bitcoin
// signature, over the UTF-8 bytes of bitidURI, recoverable to a public
// key whose address on the given network equals addr. Every failure
// mode -- malformed base64, wrong length, an out-of-range recovery
// byte, a curve point that doesn't check out, a failed ECDSA equation,
// or a plain address mismatch -- collapses to false; none of it
// escapes as an error.
func SignatureValid(addr, signature, bitidURI string, isTestnet bool) bool {
	ok, err := bitcoin.VerifyMessage(addr, signature, bitidURI, isTestnet)
	if err != nil {
		logger.Printf(logger.DBG, "[bitid] signature rejected: %s\n", err.Error())
		return false
	}
	return ok
}

// ChallengeValid is the verifier façade: it orchestrates the address,
// URI-binding and signature checks into a single accept/reject
// verdict, in that order. Any one failure rejects the whole challenge.
func ChallengeValid(addr, signature, bitidURI, callbackURI string, isTestnet bool) bool {
	if !AddressValid(addr, isTestnet) {
		logger.Println(logger.DBG, "[bitid] challenge rejected: invalid address")
		return false
	}
	if !URIValid(bitidURI, callbackURI) {
		logger.Println(logger.DBG, "[bitid] challenge rejected: URI not bound to callback")
		return false
	}
	if !SignatureValid(addr, signature, bitidURI, isTestnet) {
		logger.Println(logger.DBG, "[bitid] challenge rejected: signature verification failed")
		return false
	}
	logger.Println(logger.INFO, "[bitid] challenge accepted for "+addr)
	return true
}
