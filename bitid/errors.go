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

import "errors"

// ErrInvalidCallback is the one error kind allowed to escape the
// façade: a caller asked to build a challenge from a callback URI that
// has no scheme, host or path. Every other failure mode (malformed
// signature, malformed address, a curve point that doesn't check out,
// a failed ECDSA equation, a malformed BitID URI) is swallowed by
// ChallengeValid/SignatureValid and reported as a plain false, so a
// caller can never tell "bad signature" from "bad address" apart.
var ErrInvalidCallback = errors.New("bitid: callback URI must have a scheme, host and path")
