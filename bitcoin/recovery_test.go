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

import "testing"

const (
	mainnetURI  = "bitid://localhost:3000/callback?x=fe32e61882a71074"
	mainnetAddr = "1HpE8571PFRwge5coHiFdSCLcwa7qetcn"
	mainnetSig  = "IPKm1/EZ1AKscpwSZI34F5NiEkpdr7QKHeLOPPSGs6TXJHULs7CSNtjurcfg72HNuKvL2YgNXdOetQRyARhX7bg="

	testnetURI  = "bitid://bitid.bitcoin.blue/callback?x=3893a2a881dd4a1e&u=1"
	testnetAddr = "mpsaRD2ugdCY1iFrQdsDYRT4qeZzCnvGHW"
	testnetSig  = "ID5heI0WOeWoryGhZHaxoOH5vkmmcwDsfc4nDQ5vPcXSWh2jyETDGkSNO5zk4nbESGD6k0tgFxYA3HzlEGOf5Uc="

	tamperedSig = "H4/hhdnxtXHduvCaA+Vnf0TM4UqdljTsbdIfltwx9+w50gg3mxy8WgLSLIiEjTnxbOPW9sNRzEfjibZXnWEpde4="
)

func TestVerifyMessageMainnet(t *testing.T) {
	ok, err := VerifyMessage(mainnetAddr, mainnetSig, mainnetURI, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected valid signature to verify")
	}
}

func TestVerifyMessageTestnet(t *testing.T) {
	ok, err := VerifyMessage(testnetAddr, testnetSig, testnetURI, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected valid testnet signature to verify")
	}
}

func TestVerifyMessageTampered(t *testing.T) {
	ok, _ := VerifyMessage(mainnetAddr, tamperedSig, mainnetURI, false)
	if ok {
		t.Fatal("tampered signature unexpectedly verified")
	}
}

func TestVerifyMessageGarbage(t *testing.T) {
	ok, err := VerifyMessage(mainnetAddr, "garbage", mainnetURI, false)
	if ok {
		t.Fatal("garbage signature unexpectedly verified")
	}
	if err == nil {
		t.Fatal("expected decoding error for garbage signature")
	}
}

func TestVerifyMessageWrongMessage(t *testing.T) {
	ok, _ := VerifyMessage(mainnetAddr, mainnetSig, "bitid://localhost:3000/other?x=fe32e61882a71074", false)
	if ok {
		t.Fatal("signature unexpectedly verified against a different message")
	}
}

func TestVerifyMessageWrongNetwork(t *testing.T) {
	ok, _ := VerifyMessage(mainnetAddr, mainnetSig, mainnetURI, true)
	if ok {
		t.Fatal("mainnet address unexpectedly verified with the testnet version byte")
	}
}

func TestAddressValid(t *testing.T) {
	if !AddressValid(mainnetAddr, false) {
		t.Fatal("expected mainnet address to be valid")
	}
	if !AddressValid(testnetAddr, true) {
		t.Fatal("expected testnet address to be valid")
	}
	if AddressValid(mainnetAddr, true) {
		t.Fatal("expected mainnet address to be invalid under testnet version check")
	}
	if AddressValid("not-an-address", false) {
		t.Fatal("expected garbage address to be invalid")
	}
}
