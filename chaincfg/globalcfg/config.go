// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package globalcfg contains configuration which must be available
// anywhere in the project, do not import anything which is part of tapyrusd.
package globalcfg

const (
	// maxDataCarrierBytes is the default maximum serialized size of a
	// data carrier output script.  OP_RETURN plus a canonical push of 80
	// bytes of data serializes to exactly this size.
	maxDataCarrierBytes = 83

	// tapyrusPerCoin is the number of tapyrus in one TPC.
	tapyrusPerCoin = 1e8

	// maxTapyrus is the maximum transaction amount allowed in tapyrus.
	maxTapyrus = 21e6 * tapyrusPerCoin
)

// AmountUnit describes a unit used when formatting monetary amounts, its
// name and the number of base monetary units which make it up.
type AmountUnit struct {
	// Name is the name of the unit as it is selected by callers.
	Name string

	// ProperName, when non-empty, is appended to formatted amounts in
	// place of Name.
	ProperName string

	// Units is the number of base monetary units per one of this unit.
	Units int64

	// Zeros is the number of decimal places carried by the unit.
	Zeros int
}

// Config is the global config which is accessible anywhere in the app
type Config struct {
	AcceptDataCarrier    bool
	MaxDataCarrierBytes  uint
	DecodeWitnessProgram bool
	UnitsPerCoin         int64
	MaxUnits             int64
	Units                []AmountUnit
}

var gConf Config
var registered bool

// TapyrusDefaults creates a new config with the default relay policy of
// a tapyrus node.
func TapyrusDefaults() Config {
	return Config{
		AcceptDataCarrier:    true,
		MaxDataCarrierBytes:  maxDataCarrierBytes,
		DecodeWitnessProgram: false,
		UnitsPerCoin:         tapyrusPerCoin,
		MaxUnits:             maxTapyrus,
		Units: []AmountUnit{
			{Name: "TPC", Units: tapyrusPerCoin, Zeros: 8},
			{Name: "kTPC", Units: 1e3 * tapyrusPerCoin, Zeros: 11},
			{Name: "mTPC", Units: tapyrusPerCoin / 1e3, Zeros: 5},
			{Name: "uTPC", ProperName: "μTPC", Units: tapyrusPerCoin / 1e6, Zeros: 2},
			{Name: "tapyrus", Units: 1, Zeros: 0},
		},
	}
}

// SelectConfig is used to register the blockchain parameters with globalcfg
func SelectConfig(conf Config) bool {
	if registered {
		return false
	}
	registered = true
	gConf = conf
	return true
}

// RemoveConfig deletes the config, used in tests
func RemoveConfig() bool {
	if !registered {
		return false
	}
	registered = false
	gConf = Config{}
	return true
}

func checkRegistered() {
	if !registered {
		panic("globalcfg requested but not yet registered")
	}
}

// AcceptDataCarrier tells whether relay policy accepts transactions with
// data carrier outputs at all.
func AcceptDataCarrier() bool {
	checkRegistered()
	return gConf.AcceptDataCarrier
}

// MaxDataCarrierBytes is the maximum serialized size of a data carrier
// output script which relay policy will accept, counting the OP_RETURN
// opcode and the push opcodes as well as the data itself.
func MaxDataCarrierBytes() uint {
	checkRegistered()
	return gConf.MaxDataCarrierBytes
}

// DecodeWitnessProgram tells whether witness program output scripts should
// be decoded to their own script classes rather than treated as
// non-standard.  Segwit is not part of the tapyrus protocol so this is
// disabled by default.
func DecodeWitnessProgram() bool {
	checkRegistered()
	return gConf.DecodeWitnessProgram
}

// UnitsPerCoinI64 returns the number of atomic units per "coin"
func UnitsPerCoinI64() int64 {
	checkRegistered()
	return gConf.UnitsPerCoin
}

// MaxUnitsI64 returns the maximum number of atomic units of currency
func MaxUnitsI64() int64 {
	checkRegistered()
	return gConf.MaxUnits
}

// AmountUnits returns the units which the chain's currency can be
// denominated in.  The first entry is the default used for formatting.
func AmountUnits() []AmountUnit {
	checkRegistered()
	return gConf.Units
}
