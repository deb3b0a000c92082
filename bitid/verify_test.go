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

import "testing"

const (
	mainnetCallback = "https://localhost:3000/callback"
	mainnetNonce    = "fe32e61882a71074"
	mainnetURI      = "bitid://localhost:3000/callback?x=fe32e61882a71074"
	mainnetAddr     = "1HpE8571PFRwge5coHiFdSCLcwa7qetcn"
	mainnetSig      = "IPKm1/EZ1AKscpwSZI34F5NiEkpdr7QKHeLOPPSGs6TXJHULs7CSNtjurcfg72HNuKvL2YgNXdOetQRyARhX7bg="

	testnetCallback = "http://bitid.bitcoin.blue/callback"
	testnetNonce    = "3893a2a881dd4a1e"
	testnetURI      = "bitid://bitid.bitcoin.blue/callback?x=3893a2a881dd4a1e&u=1"
	testnetAddr     = "mpsaRD2ugdCY1iFrQdsDYRT4qeZzCnvGHW"
	testnetSig      = "ID5heI0WOeWoryGhZHaxoOH5vkmmcwDsfc4nDQ5vPcXSWh2jyETDGkSNO5zk4nbESGD6k0tgFxYA3HzlEGOf5Uc="

	tamperedSig = "H4/hhdnxtXHduvCaA+Vnf0TM4UqdljTsbdIfltwx9+w50gg3mxy8WgLSLIiEjTnxbOPW9sNRzEfjibZXnWEpde4="
)

func TestChallengeValidMainnet(t *testing.T) {
	if !ChallengeValid(mainnetAddr, mainnetSig, mainnetURI, mainnetCallback, false) {
		t.Fatal("expected mainnet challenge to be accepted")
	}
}

func TestChallengeValidTestnet(t *testing.T) {
	if !ChallengeValid(testnetAddr, testnetSig, testnetURI, testnetCallback, true) {
		t.Fatal("expected testnet challenge to be accepted")
	}
}

func TestChallengeValidTamperedSignature(t *testing.T) {
	if ChallengeValid(mainnetAddr, tamperedSig, mainnetURI, mainnetCallback, false) {
		t.Fatal("tampered signature unexpectedly accepted")
	}
}

func TestChallengeValidGarbageSignature(t *testing.T) {
	if ChallengeValid(mainnetAddr, "garbage", mainnetURI, mainnetCallback, false) {
		t.Fatal("garbage signature unexpectedly accepted")
	}
}

func TestChallengeValidURIMismatch(t *testing.T) {
	mismatched := "bitid://localhost:3000/other?x=fe32e61882a71074"
	if ChallengeValid(mainnetAddr, mainnetSig, mismatched, mainnetCallback, false) {
		t.Fatal("mismatched URI unexpectedly accepted")
	}
}

func TestBuildURIRoundTrip(t *testing.T) {
	uri, err := BuildURI(mainnetCallback, mainnetNonce)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uri != mainnetURI {
		t.Fatalf("got %q, want %q", uri, mainnetURI)
	}
	nonce, ok := ExtractNonce(uri)
	if !ok || nonce != mainnetNonce {
		t.Fatalf("ExtractNonce round-trip failed: got %q, ok=%v", nonce, ok)
	}
	if !URIValid(uri, mainnetCallback) {
		t.Fatal("expected freshly built URI to validate against its own callback")
	}
}

func TestBuildURIUnsecureCallback(t *testing.T) {
	uri, err := BuildURI(testnetCallback, testnetNonce)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uri != testnetURI {
		t.Fatalf("got %q, want %q", uri, testnetURI)
	}
	if _, ok := ExtractUnsecure(uri); !ok {
		t.Fatal("expected u=1 parameter for a non-https callback")
	}
}

func TestBuildURIGeneratesNonceWhenOmitted(t *testing.T) {
	uri, err := BuildURI(mainnetCallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nonce, ok := ExtractNonce(uri)
	if !ok || len(nonce) != NonceLen {
		t.Fatalf("expected a generated %d-char nonce, got %q", NonceLen, nonce)
	}
}

func TestBuildURIInvalidCallback(t *testing.T) {
	if _, err := BuildURI("not-a-url-at-all"); err != ErrInvalidCallback {
		t.Fatalf("expected ErrInvalidCallback, got %v", err)
	}
}

func TestURIValidRejectsSchemeMismatch(t *testing.T) {
	if URIValid("https://localhost:3000/callback?x=fe32e61882a71074", mainnetCallback) {
		t.Fatal("expected non-bitid scheme to be rejected")
	}
}

func TestURIValidRejectsUnexpectedUnsecureMarker(t *testing.T) {
	if URIValid(mainnetURI+"&u=1", mainnetCallback) {
		t.Fatal("expected spurious u=1 against an https callback to be rejected")
	}
}

func TestExtractUnsecureRejectsMalformedValue(t *testing.T) {
	if _, ok := ExtractUnsecure("bitid://h/p?x=1&u=2"); ok {
		t.Fatal("expected u=2 to be rejected as malformed")
	}
}

func TestQRCode(t *testing.T) {
	want := "http://chart.apis.google.com/chart?cht=qr&chs=300x300&chl=bitid%3A//localhost%3A3000/callback%3Fx%3Dfe32e61882a71074"
	if got := QRCode(mainnetURI); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateNonce(t *testing.T) {
	n := GenerateNonce()
	if len(n) != NonceLen {
		t.Fatalf("expected nonce of length %d, got %d", NonceLen, len(n))
	}
	for _, r := range n {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Fatalf("nonce contains non-lowercase-hex character: %q", n)
		}
	}
}
