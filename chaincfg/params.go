// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"strings"

	"github.com/chaintope/tapyrusd/btcutil/er"
	"github.com/chaintope/tapyrusd/chaincfg/globalcfg"
	"github.com/chaintope/tapyrusd/wire/protocol"
)

// Params defines a tapyrus network by its parameters.  These parameters may be
// used by tapyrus applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// Unlike bitcoin networks there is no genesis hash here, a tapyrus genesis
// block is produced by the federation which operates the network so it is not
// a compile time constant.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net protocol.TapyrusNet

	// NetworkID distinguishes tapyrus networks from one another.  The
	// magic bytes of a network are derived from it.
	NetworkID uint32

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// The relay policy defaults for this network.
	GlobalConf globalcfg.Config

	// Human-readable part for Bech32 encoded witness addresses.  Witness
	// programs are not part of the tapyrus protocol but the address types
	// are retained for tooling which inspects scripts from other chains.
	Bech32HRPSegwit string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// ProdNetParams defines the network parameters for the production tapyrus
// network with network id 1.
var ProdNetParams = Params{
	Name:        "prod",
	Net:         protocol.ProdNet,
	NetworkID:   1,
	DefaultPort: "2357",

	// Relay policy
	GlobalConf: globalcfg.TapyrusDefaults(),

	// Human-readable part for Bech32 encoded witness addresses.
	Bech32HRPSegwit: "tap",

	// Address encoding magics
	PubKeyHashAddrID: 0x00, // starts with 1
	ScriptHashAddrID: 0x05, // starts with 3
	PrivateKeyID:     0x80, // starts with 5 (uncompressed) or K (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
}

// DevNetParams defines the network parameters for the public development
// tapyrus network.  Anyone may run a federation signer for it, so nothing of
// value should be kept on this network.
var DevNetParams = Params{
	Name:        "dev",
	Net:         protocol.DevNet,
	NetworkID:   1939510133,
	DefaultPort: "12383",

	// Relay policy
	GlobalConf: globalcfg.TapyrusDefaults(),

	// Human-readable part for Bech32 encoded witness addresses.
	Bech32HRPSegwit: "tapt",

	// Address encoding magics
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
}

// RegressionNetParams defines the network parameters for a locally run
// tapyrus network used by the regression tests, with the network id the
// getting started documentation uses.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         protocol.RegressionNet,
	NetworkID:   1905960821,
	DefaultPort: "12383",

	// Relay policy
	GlobalConf: globalcfg.TapyrusDefaults(),

	// Human-readable part for Bech32 encoded witness addresses.
	Bech32HRPSegwit: "taprt",

	// Address encoding magics
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
}

var (
	// ErrDuplicateNet describes an error where the parameters for a tapyrus
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = er.GenericErrorType.CodeWithDetail("ErrDuplicateNet",
		"duplicate tapyrus network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = er.GenericErrorType.CodeWithDetail("ErrUnknownHDKeyID",
		"unknown hd private extended key bytes")
)

var (
	registeredNets       = make(map[protocol.TapyrusNet]struct{})
	pubKeyHashAddrIDs    = make(map[byte]struct{})
	scriptHashAddrIDs    = make(map[byte]struct{})
	bech32SegwitPrefixes = make(map[string]struct{})
	hdPrivToPubKeyIDs    = make(map[[4]byte][]byte)
)

// Register registers the network parameters for a tapyrus network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) er.R {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet.Default()
	}
	registeredNets[params.Net] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]

	// A valid Bech32 encoded segwit address always has as prefix the
	// human-readable part for the given net followed by '1'.
	bech32SegwitPrefixes[params.Bech32HRPSegwit+"1"] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.String())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsPubKeyHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// IsBech32SegwitPrefix returns whether the prefix is a known prefix for segwit
// addresses on any default or registered network.  This is used when decoding
// an address string into a specific address type.
func IsBech32SegwitPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	_, ok := bech32SegwitPrefixes[prefix]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, er.R) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID.Default()
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID.Default()
	}

	return pubBytes, nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&ProdNetParams)
	mustRegister(&DevNetParams)
	mustRegister(&RegressionNetParams)
}
