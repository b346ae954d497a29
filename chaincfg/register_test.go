// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"testing"

	"github.com/chaintope/tapyrusd/wire/protocol"
)

// TestRegister ensures that registering a new network makes its address
// magics visible to the lookup functions and that duplicate networks are
// rejected.
func TestRegister(t *testing.T) {
	// The default networks are registered when the package initializes.
	if err := Register(&ProdNetParams); !ErrDuplicateNet.Is(err) {
		t.Fatalf("Register: expected duplicate net error, got %v", err)
	}

	mockNetParams := Params{
		Name:             "mocknet",
		Net:              protocol.TapyrusNet(0xdbb6c0fb),
		NetworkID:        9999,
		Bech32HRPSegwit:  "tc",
		PubKeyHashAddrID: 0x9f,
		ScriptHashAddrID: 0xf9,
		HDPrivateKeyID:   [4]byte{0x01, 0x02, 0x03, 0x04},
		HDPublicKeyID:    [4]byte{0x05, 0x06, 0x07, 0x08},
	}

	// Nothing about the mock network may be visible before registration.
	if IsPubKeyHashAddrID(mockNetParams.PubKeyHashAddrID) {
		t.Fatalf("IsPubKeyHashAddrID: %#x is known before registration",
			mockNetParams.PubKeyHashAddrID)
	}
	if IsScriptHashAddrID(mockNetParams.ScriptHashAddrID) {
		t.Fatalf("IsScriptHashAddrID: %#x is known before registration",
			mockNetParams.ScriptHashAddrID)
	}
	if IsBech32SegwitPrefix(mockNetParams.Bech32HRPSegwit + "1") {
		t.Fatalf("IsBech32SegwitPrefix: %v is known before registration",
			mockNetParams.Bech32HRPSegwit+"1")
	}
	if _, err := HDPrivateKeyToPublicKeyID(mockNetParams.HDPrivateKeyID[:]); !ErrUnknownHDKeyID.Is(err) {
		t.Fatalf("HDPrivateKeyToPublicKeyID: expected unknown key id "+
			"error, got %v", err)
	}

	if err := Register(&mockNetParams); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register(&mockNetParams); !ErrDuplicateNet.Is(err) {
		t.Fatalf("Register: expected duplicate net error on second "+
			"registration, got %v", err)
	}

	if !IsPubKeyHashAddrID(mockNetParams.PubKeyHashAddrID) {
		t.Fatalf("IsPubKeyHashAddrID: %#x is unknown after registration",
			mockNetParams.PubKeyHashAddrID)
	}
	if !IsScriptHashAddrID(mockNetParams.ScriptHashAddrID) {
		t.Fatalf("IsScriptHashAddrID: %#x is unknown after registration",
			mockNetParams.ScriptHashAddrID)
	}
	if !IsBech32SegwitPrefix(mockNetParams.Bech32HRPSegwit + "1") {
		t.Fatalf("IsBech32SegwitPrefix: %v is unknown after registration",
			mockNetParams.Bech32HRPSegwit+"1")
	}
	pub, err := HDPrivateKeyToPublicKeyID(mockNetParams.HDPrivateKeyID[:])
	if err != nil {
		t.Fatalf("HDPrivateKeyToPublicKeyID: %v", err)
	}
	if !bytes.Equal(pub, mockNetParams.HDPublicKeyID[:]) {
		t.Fatalf("HDPrivateKeyToPublicKeyID: got %x, want %x", pub,
			mockNetParams.HDPublicKeyID[:])
	}
}

// TestDefaultNetworkLookups verifies the lookups for the networks registered
// by the package itself.
func TestDefaultNetworkLookups(t *testing.T) {
	for _, params := range []*Params{&ProdNetParams, &DevNetParams, &RegressionNetParams} {
		if !IsPubKeyHashAddrID(params.PubKeyHashAddrID) {
			t.Errorf("%v: pubkey hash id %#x is unknown", params.Name,
				params.PubKeyHashAddrID)
		}
		if !IsScriptHashAddrID(params.ScriptHashAddrID) {
			t.Errorf("%v: script hash id %#x is unknown", params.Name,
				params.ScriptHashAddrID)
		}
		if !IsBech32SegwitPrefix(params.Bech32HRPSegwit + "1") {
			t.Errorf("%v: bech32 prefix %v is unknown", params.Name,
				params.Bech32HRPSegwit+"1")
		}

		pub, err := HDPrivateKeyToPublicKeyID(params.HDPrivateKeyID[:])
		if err != nil {
			t.Errorf("%v: HDPrivateKeyToPublicKeyID: %v", params.Name, err)
			continue
		}
		if !bytes.Equal(pub, params.HDPublicKeyID[:]) {
			t.Errorf("%v: HDPrivateKeyToPublicKeyID: got %x, want %x",
				params.Name, pub, params.HDPublicKeyID[:])
		}
	}

	// The prefix lookup is case insensitive, but only matches when the
	// separator is included.
	if !IsBech32SegwitPrefix("TAP1") {
		t.Errorf("IsBech32SegwitPrefix: uppercase prefix is unknown")
	}
	if IsBech32SegwitPrefix("tap") {
		t.Errorf("IsBech32SegwitPrefix: prefix without separator matched")
	}

	// An hd key id which is not exactly 4 bytes must be rejected.
	if _, err := HDPrivateKeyToPublicKeyID(ProdNetParams.HDPrivateKeyID[:3]); !ErrUnknownHDKeyID.Is(err) {
		t.Errorf("HDPrivateKeyToPublicKeyID: expected unknown key id "+
			"error for a short id, got %v", err)
	}
}
