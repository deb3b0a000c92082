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
	"fmt"
	"net/url"
	"strings"

	"github.com/bfix/bitid/logger"
)

// Wire-level constants of the BitID URI scheme.
const (
	BitIDScheme    = "bitid"
	ParamNonce     = "x"
	ParamUnsecure  = "u"
	qrServURI      = "http://chart.apis.google.com/chart?cht=qr&chs=300x300&chl="
	secureScheme   = "https"
	unsecureMarker = "1"
)

// BuildURI constructs a BitID challenge URI for callback. If nonce is
// given it is used verbatim (a caller re-issuing a known challenge);
// otherwise a fresh one is generated. Fails only on a malformed
// callback (missing scheme, host or path) -- the one error kind this
// package lets escape the façade.
func BuildURI(callback string, nonce ...string) (string, error) {
	cb, err := url.Parse(callback)
	if err != nil || cb.Scheme == "" || cb.Host == "" || cb.Path == "" {
		logger.Printf(logger.ERROR, "[bitid] invalid callback URI %q\n", callback)
		return "", ErrInvalidCallback
	}
	n := ""
	if len(nonce) > 0 {
		n = nonce[0]
	} else {
		n = GenerateNonce()
	}
	uri := "bitid://" + cb.Host + cb.Path + "?" + ParamNonce + "=" + n
	if cb.Scheme != secureScheme {
		uri += "&" + ParamUnsecure + "=" + unsecureMarker
	}
	logger.Println(logger.DBG, "[bitid] built challenge URI "+uri)
	return uri, nil
}

// ExtractNonce returns the single "x" query parameter of a BitID URI.
// The second return value is false if the URI fails to parse or the
// parameter is absent, empty, or repeated.
func ExtractNonce(bitidURI string) (string, bool) {
	return extractParam(bitidURI, ParamNonce)
}

// ExtractUnsecure returns the single "u" query parameter of a BitID
// URI, or false if it is absent, empty, repeated, or anything other
// than "0" or "1".
func ExtractUnsecure(bitidURI string) (string, bool) {
	val, ok := extractParam(bitidURI, ParamUnsecure)
	if !ok || (val != "0" && val != unsecureMarker) {
		return "", false
	}
	return val, true
}

func extractParam(bitidURI, name string) (string, bool) {
	u, err := url.Parse(bitidURI)
	if err != nil {
		return "", false
	}
	vals, ok := u.Query()[name]
	if !ok || len(vals) != 1 || vals[0] == "" {
		return "", false
	}
	return vals[0], true
}

// URIValid reports whether bitidURI is a well-formed BitID challenge
// bound to callbackURI: same host, same path, scheme "bitid", exactly
// one non-empty nonce, and a "u=1" marker present if and only if the
// callback itself is not served over https.
func URIValid(bitidURI, callbackURI string) bool {
	bu, err := url.Parse(bitidURI)
	if err != nil {
		return false
	}
	cu, err := url.Parse(callbackURI)
	if err != nil {
		return false
	}
	if bu.Scheme != BitIDScheme {
		return false
	}
	if bu.Host != cu.Host || bu.Path != cu.Path {
		return false
	}
	if _, ok := ExtractNonce(bitidURI); !ok {
		return false
	}
	callbackIsUnsecure := cu.Scheme != secureScheme
	uVal, uPresent := ExtractUnsecure(bitidURI)
	if callbackIsUnsecure {
		return uPresent && uVal == unsecureMarker
	}
	return !uPresent
}

// QRCode returns the URL of an external QR-code renderer that encodes
// bitidURI, percent-encoding every reserved character except '/' --
// matching the convention of the original BitID reference client.
func QRCode(bitidURI string) string {
	return qrServURI + quotePreservingSlash(bitidURI)
}

func quotePreservingSlash(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedOrSlash(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isUnreservedOrSlash(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '~' || c == '/':
		return true
	}
	return false
}
