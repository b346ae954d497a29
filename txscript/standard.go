// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"crypto/sha256"
	"fmt"

	"github.com/chaintope/tapyrusd/btcutil/er"
	"github.com/chaintope/tapyrusd/btcutil/util"
	"github.com/chaintope/tapyrusd/txscript/opcode"
	"github.com/chaintope/tapyrusd/txscript/params"
	"github.com/chaintope/tapyrusd/txscript/parsescript"
	"github.com/chaintope/tapyrusd/txscript/scriptbuilder"
	"github.com/chaintope/tapyrusd/txscript/txscripterr"

	"github.com/chaintope/tapyrusd/btcutil"
	"github.com/chaintope/tapyrusd/chaincfg"
	"github.com/chaintope/tapyrusd/chaincfg/globalcfg"
)

const (
	// MaxDataCarrierSize is the default maximum number of bytes a null
	// data script may occupy to be relayed, counting the OP_RETURN opcode
	// and the push opcodes as well as the data itself.  The live limit is
	// read from globalcfg which defaults to this value.
	MaxDataCarrierSize = 83
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy         ScriptClass = iota // None of the recognized forms.
	PubKeyTy                                 // Pay pubkey.
	PubKeyHashTy                             // Pay pubkey hash.
	ScriptHashTy                             // Pay to script hash.
	MultiSigTy                               // Multi signature.
	NullDataTy                               // Empty data-only (provably prunable).
	CustomTy                                 // Syntactically valid but no known template.
	ColorPubKeyHashTy                        // Colored pay pubkey hash.
	ColorScriptHashTy                        // Colored pay to script hash.
	WitnessV0PubKeyHashTy                    // Pay witness pubkey hash.
	WitnessV0ScriptHashTy                    // Pay to witness script hash.
	WitnessUnknownTy                         // Witness program of an unknown version.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy:         "nonstandard",
	PubKeyTy:              "pubkey",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	MultiSigTy:            "multisig",
	NullDataTy:            "nulldata",
	CustomTy:              "custom",
	ColorPubKeyHashTy:     "coloredpubkeyhash",
	ColorScriptHashTy:     "coloredscripthash",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	WitnessUnknownTy:      "witness_unknown",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) || int(t) < 0 {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// IsColored returns true if the script class carries a color identifier.
func (t ScriptClass) IsColored() bool {
	return t == ColorPubKeyHashTy || t == ColorScriptHashTy
}

// IsSegwit returns true if the script is a known segwit type.
func (t ScriptClass) IsSegwit() bool {
	return t == WitnessV0PubKeyHashTy || t == WitnessV0ScriptHashTy
}

// SolverFlags adjusts the classification behavior of Solver beyond what the
// reference consensus rules do.
type SolverFlags uint32

const (
	// SFDecodeWitness causes witness programs to be decoded into their own
	// script classes rather than being reported as anonymous non-standard
	// outputs the way tapyrus consensus sees them.
	SFDecodeWitness SolverFlags = 1 << 0
)

// validPubKeySize returns true when the passed bytes have the exact length
// implied by their public key header byte: 33 bytes for the compressed
// headers 0x02 and 0x03 or 65 bytes for the uncompressed and hybrid headers
// 0x04, 0x06 and 0x07.  It does not check that the key is on the curve.
func validPubKeySize(pubKey []byte) bool {
	switch len(pubKey) {
	case 33:
		return pubKey[0] == 0x02 || pubKey[0] == 0x03
	case 65:
		return pubKey[0] == 0x04 || pubKey[0] == 0x06 || pubKey[0] == 0x07
	}
	return false
}

// matchPayToPubKey returns the serialized public key when the passed script
// is a canonical pay-to-pubkey script, nil otherwise.  The template is a
// single push of a 33 or 65 byte public key followed by OP_CHECKSIG, with
// the push length agreeing with the key's header byte.
func matchPayToPubKey(script []byte) []byte {
	if len(script) == 67 && script[0] == opcode.OP_DATA_65 &&
		script[66] == opcode.OP_CHECKSIG {

		pubKey := script[1:66]
		if validPubKeySize(pubKey) {
			return pubKey
		}
	}
	if len(script) == 35 && script[0] == opcode.OP_DATA_33 &&
		script[34] == opcode.OP_CHECKSIG {

		pubKey := script[1:34]
		if validPubKeySize(pubKey) {
			return pubKey
		}
	}
	return nil
}

// matchPayToPubKeyHash returns the 20 byte pubkey hash when the passed
// script is a canonical pay-to-pubkey-hash script, nil otherwise.
func matchPayToPubKeyHash(script []byte) []byte {
	if len(script) == 25 && script[0] == opcode.OP_DUP &&
		script[1] == opcode.OP_HASH160 &&
		script[2] == opcode.OP_DATA_20 &&
		script[23] == opcode.OP_EQUALVERIFY &&
		script[24] == opcode.OP_CHECKSIG {

		return script[3:23]
	}
	return nil
}

// matchColoredPayToPubKeyHash returns the 20 byte pubkey hash and the 33
// byte color identifier when the passed script is a canonical colored
// pay-to-pubkey-hash script, nils otherwise.  The template is a color
// identifier push and OP_COLOR in front of a standard pay-to-pubkey-hash
// body.
func matchColoredPayToPubKeyHash(script []byte) ([]byte, []byte) {
	if len(script) == 60 && script[0] == opcode.OP_DATA_33 &&
		validColorType(script[1]) &&
		script[34] == opcode.OP_COLOR &&
		script[35] == opcode.OP_DUP &&
		script[36] == opcode.OP_HASH160 &&
		script[37] == opcode.OP_DATA_20 &&
		script[58] == opcode.OP_EQUALVERIFY &&
		script[59] == opcode.OP_CHECKSIG {

		return script[38:58], script[1:34]
	}
	return nil, nil
}

// isSmallPositiveInt returns whether or not the opcode is one of the small
// positive integer pushes, OP_1 through OP_16.  Multisig thresholds and key
// counts are encoded with these, so zero is not included.
func isSmallPositiveInt(op opcode.Opcode) bool {
	return op.Value >= opcode.OP_1 && op.Value <= opcode.OP_16
}

// matchMultiSig deconstructs the passed script as a bare multisig script,
// returning the required signature count and the public keys when it
// matches.  The template is a small integer threshold, a run of pushes
// whose data is sized like a serialized public key, a small integer key
// count equal to the length of the run and a final OP_CHECKMULTISIG.
// Thresholds use OP_1 through OP_16 so 1 <= required <= keys <= 16 always
// holds on a match.
func matchMultiSig(script []byte) (int, [][]byte, bool) {
	if len(script) < 1 || script[len(script)-1] != opcode.OP_CHECKMULTISIG {
		return 0, nil, false
	}

	pops, err := parsescript.ParseScript(script)
	if err != nil || len(pops) < 1 {
		return 0, nil, false
	}

	if !isSmallPositiveInt(pops[0].Opcode) {
		return 0, nil, false
	}
	required := asSmallInt(pops[0].Opcode)

	// Greedily consume pushes that are sized like serialized public keys.
	var pubKeys [][]byte
	i := 1
	for i < len(pops) && validPubKeySize(pops[i].Data) {
		pubKeys = append(pubKeys, pops[i].Data)
		i++
	}

	// The run must terminate on the key count with the final
	// OP_CHECKMULTISIG immediately after it and nothing trailing.
	if i != len(pops)-2 || !isSmallPositiveInt(pops[i].Opcode) ||
		pops[i+1].Opcode.Value != opcode.OP_CHECKMULTISIG {
		return 0, nil, false
	}
	keys := asSmallInt(pops[i].Opcode)
	if len(pubKeys) != keys || keys < required {
		return 0, nil, false
	}
	return required, pubKeys, true
}

// isDisabledOrReserved returns whether the opcode always renders a script
// non-standard: the disabled splice, bitwise and arithmetic opcodes, the
// reserved opcodes and the upgradable NOPs other than
// OP_CHECKLOCKTIMEVERIFY and OP_CHECKSEQUENCEVERIFY.
func isDisabledOrReserved(op byte) bool {
	switch op {
	case opcode.OP_CAT, opcode.OP_SUBSTR, opcode.OP_LEFT, opcode.OP_RIGHT,
		opcode.OP_INVERT, opcode.OP_AND, opcode.OP_OR, opcode.OP_XOR,
		opcode.OP_2MUL, opcode.OP_2DIV, opcode.OP_MUL, opcode.OP_DIV,
		opcode.OP_MOD, opcode.OP_LSHIFT, opcode.OP_RSHIFT,
		opcode.OP_VER, opcode.OP_VERIF, opcode.OP_VERNOTIF,
		opcode.OP_RESERVED, opcode.OP_RESERVED1, opcode.OP_RESERVED2,
		opcode.OP_NOP1, opcode.OP_NOP4, opcode.OP_NOP5, opcode.OP_NOP6,
		opcode.OP_NOP7, opcode.OP_NOP8, opcode.OP_NOP9, opcode.OP_NOP10:
		return true
	}
	return false
}

// CheckScriptSyntax returns true when the script tokenizes cleanly and its
// opcode stream stays inside the limits enforced at execution time: no push
// larger than params.MaxScriptElementSize, no more than
// params.MaxOpsPerScript non-push operations and none of the disabled or
// reserved opcodes anywhere in the stream.  OP_CHECKLOCKTIMEVERIFY and
// OP_CHECKSEQUENCEVERIFY are allowed.  Scripts which pass but match no
// standard template classify as custom rather than non-standard.
func CheckScriptSyntax(script []byte) bool {
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return false
	}

	nOpCount := 0
	for _, pop := range pops {
		if len(pop.Data) > params.MaxScriptElementSize {
			return false
		}
		if pop.Opcode.Value > opcode.OP_16 {
			if nOpCount++; nOpCount > params.MaxOpsPerScript {
				return false
			}
		}
		if isDisabledOrReserved(pop.Opcode.Value) {
			return false
		}
	}
	return true
}

// Solver classifies the passed public key script and returns the solution
// blobs its template binds, in template order:
//
//	PubKeyTy:              the serialized public key
//	PubKeyHashTy:          the 20 byte pubkey hash
//	ScriptHashTy:          the 20 byte script hash
//	ColorPubKeyHashTy:     the pubkey hash and the 33 byte color identifier
//	ColorScriptHashTy:     the script hash and the 33 byte color identifier
//	MultiSigTy:            the threshold, one entry per key and the key count
//	NullDataTy, CustomTy:  no solutions
//
// Witness programs report as NonStandardTy with no solutions and no error
// because tapyrus consensus does not interpret them.  A script which matches
// no template and fails CheckScriptSyntax returns NonStandardTy with
// ErrNonStandardScript.
func Solver(pkScript []byte) (ScriptClass, [][]byte, er.R) {
	return SolverWithFlags(pkScript, 0)
}

// SolverWithFlags behaves as Solver with the passed flags applied.  With
// SFDecodeWitness set, version 0 witness programs classify as
// WitnessV0PubKeyHashTy or WitnessV0ScriptHashTy with the program as the
// solution, and other versions as WitnessUnknownTy with the version and the
// program as the solutions.
func SolverWithFlags(pkScript []byte, flags SolverFlags) (ScriptClass, [][]byte, er.R) {
	// Shortcut for pay-to-script-hash which is more constrained than the
	// other templates: it is always OP_HASH160 <20 byte hash> OP_EQUAL.
	if IsPayToScriptHash(pkScript) {
		return ScriptHashTy, [][]byte{pkScript[2:22]}, nil
	}

	// The colored variant carries a color identifier push and OP_COLOR in
	// front of the same body.
	if IsColoredPayToScriptHash(pkScript) {
		return ColorScriptHashTy, [][]byte{pkScript[37:57], pkScript[1:34]}, nil
	}

	if IsWitnessProgram(pkScript) {
		if flags&SFDecodeWitness == 0 {
			return NonStandardTy, nil, nil
		}

		version, program, err := ExtractWitnessProgramInfo(pkScript)
		if err != nil {
			return NonStandardTy, nil, err
		}
		switch {
		case version == 0 && len(program) == params.PayToWitnessPubKeyHashDataSize:
			return WitnessV0PubKeyHashTy, [][]byte{program}, nil
		case version == 0 && len(program) == params.PayToWitnessScriptHashDataSize:
			return WitnessV0ScriptHashTy, [][]byte{program}, nil
		default:
			return WitnessUnknownTy, [][]byte{{byte(version)}, program}, nil
		}
	}

	// Provably prunable, data-carrying output.  So long as the script
	// begins with OP_RETURN and the remainder only pushes data we do not
	// care what exactly is in it.
	if len(pkScript) >= 1 && pkScript[0] == opcode.OP_RETURN &&
		IsPushOnlyScript(pkScript[1:]) {
		return NullDataTy, nil, nil
	}

	if pubKey := matchPayToPubKey(pkScript); pubKey != nil {
		return PubKeyTy, [][]byte{pubKey}, nil
	}

	if hash := matchPayToPubKeyHash(pkScript); hash != nil {
		return PubKeyHashTy, [][]byte{hash}, nil
	}

	if hash, colorID := matchColoredPayToPubKeyHash(pkScript); hash != nil {
		return ColorPubKeyHashTy, [][]byte{hash, colorID}, nil
	}

	if required, pubKeys, ok := matchMultiSig(pkScript); ok {
		solutions := make([][]byte, 0, len(pubKeys)+2)
		solutions = append(solutions, []byte{byte(required)})
		solutions = append(solutions, pubKeys...)
		solutions = append(solutions, []byte{byte(len(pubKeys))})
		return MultiSigTy, solutions, nil
	}

	if !CheckScriptSyntax(pkScript) {
		return NonStandardTy, nil, txscripterr.ScriptError(
			txscripterr.ErrNonStandardScript,
			"script matches no standard template and fails the syntax check")
	}

	return CustomTy, nil, nil
}

// GetScriptClass returns the class of the script passed.
//
// NonStandardTy will be returned when the script matches no recognized
// template and does not qualify as a custom script.
func GetScriptClass(script []byte) ScriptClass {
	class, _, _ := Solver(script)
	return class
}

// CalcMultiSigStats returns the number of public keys and signatures from
// a multi-signature transaction script.  The passed script MUST already be
// known to be a multi-signature script.
func CalcMultiSigStats(script []byte) (int, int, er.R) {
	class, solutions, err := Solver(script)
	if err != nil {
		return 0, 0, err
	}

	// A multi-signature script is of the pattern:
	//  NUM_SIGS PUBKEY PUBKEY PUBKEY... NUM_PUBKEYS OP_CHECKMULTISIG
	// so the solver binds the signature count first and the key count last
	// with one entry per public key in between.
	if class != MultiSigTy {
		str := fmt.Sprintf("script %x is not a multisig script", script)
		return 0, 0, txscripterr.ScriptError(txscripterr.ErrNotMultisigScript, str)
	}

	numSigs := int(solutions[0][0])
	numPubKeys := int(solutions[len(solutions)-1][0])
	return numPubKeys, numSigs, nil
}

// payToPubKeyHashScript creates a new script to pay a transaction
// output to a 20-byte pubkey hash. It is expected that the input is a valid
// hash.
func payToPubKeyHashScript(pubKeyHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_DUP).AddOp(opcode.OP_HASH160).
		AddData(pubKeyHash).AddOp(opcode.OP_EQUALVERIFY).AddOp(opcode.OP_CHECKSIG).
		Script()
}

// payToScriptHashScript creates a new script to pay a transaction output to a
// script hash. It is expected that the input is a valid hash.
func payToScriptHashScript(scriptHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_HASH160).AddData(scriptHash).
		AddOp(opcode.OP_EQUAL).Script()
}

// payToColoredPubKeyHashScript creates a colored pay-to-pubkey-hash script
// gating the standard body behind the passed color identifier.
func payToColoredPubKeyHashScript(colorID, pubKeyHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddData(colorID).AddOp(opcode.OP_COLOR).
		AddOp(opcode.OP_DUP).AddOp(opcode.OP_HASH160).AddData(pubKeyHash).
		AddOp(opcode.OP_EQUALVERIFY).AddOp(opcode.OP_CHECKSIG).Script()
}

// payToColoredScriptHashScript creates a colored pay-to-script-hash script
// gating the standard body behind the passed color identifier.
func payToColoredScriptHashScript(colorID, scriptHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddData(colorID).AddOp(opcode.OP_COLOR).
		AddOp(opcode.OP_HASH160).AddData(scriptHash).AddOp(opcode.OP_EQUAL).Script()
}

// payToWitnessPubKeyHashScript creates a new script to pay to a version 0
// pubkey hash witness program. The passed hash is expected to be valid.
func payToWitnessPubKeyHashScript(pubKeyHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_0).AddData(pubKeyHash).Script()
}

// payToWitnessScriptHashScript creates a new script to pay to a version 0
// script hash witness program. The passed hash is expected to be valid.
func payToWitnessScriptHashScript(scriptHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_0).AddData(scriptHash).Script()
}

// PayToPubKeyScript creates a new script to pay a transaction output to the
// passed serialized public key: a single push of the key followed by
// OP_CHECKSIG.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddData(serializedPubKey).
		AddOp(opcode.OP_CHECKSIG).Script()
}

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr btcutil.Address) ([]byte, er.R) {
	if util.IsNil(addr) {
		return nil, txscripterr.ScriptError(txscripterr.ErrUnsupportedAddress,
			"unable to generate payment script for nil address")
	}

	switch addr := addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return payToPubKeyHashScript(addr.ScriptAddress())

	case *btcutil.AddressScriptHash:
		return payToScriptHashScript(addr.ScriptAddress())

	case *btcutil.AddressPubKey:
		return PayToPubKeyScript(addr.ScriptAddress())

	case *btcutil.AddressWitnessPubKeyHash:
		return payToWitnessPubKeyHashScript(addr.ScriptAddress())

	case *btcutil.AddressWitnessScriptHash:
		return payToWitnessScriptHashScript(addr.ScriptAddress())

	case *btcutil.AddressWitnessUnknown:
		return scriptbuilder.NewScriptBuilder().
			AddInt64(int64(addr.WitnessVersion())).
			AddData(addr.ScriptAddress()).Script()

	case *btcutil.AddressNonStandard:
		// The address wraps a script which could not be decoded, pay
		// back to the same script.
		return util.CloneBytes(addr.ScriptAddress()), nil
	}

	str := fmt.Sprintf("unable to generate payment script for unsupported "+
		"address type %T", addr)
	return nil, txscripterr.ScriptError(txscripterr.ErrUnsupportedAddress, str)
}

// PayToColoredAddrScript creates a new script binding the asset named by the
// passed color identifier to the spending condition of the passed address.
// Only pubkey hash and script hash addresses have colored forms.
func PayToColoredAddrScript(colorID *ColorIdentifier, addr btcutil.Address) ([]byte, er.R) {
	if colorID == nil {
		return nil, txscripterr.ScriptError(txscripterr.ErrInvalidColorId,
			"unable to generate colored script for nil color identifier")
	}
	if util.IsNil(addr) {
		return nil, txscripterr.ScriptError(txscripterr.ErrUnsupportedAddress,
			"unable to generate payment script for nil address")
	}

	switch addr := addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return payToColoredPubKeyHashScript(colorID.Bytes(), addr.ScriptAddress())

	case *btcutil.AddressScriptHash:
		return payToColoredScriptHashScript(colorID.Bytes(), addr.ScriptAddress())
	}

	str := fmt.Sprintf("unable to generate colored payment script for "+
		"unsupported address type %T", addr)
	return nil, txscripterr.ScriptError(txscripterr.ErrUnsupportedAddress, str)
}

// NullDataScript creates a provably-prunable script containing OP_RETURN
// followed by the passed data.  An Error with the error code
// ErrTooMuchNullData will be returned if the resulting script would be
// larger than the configured data carrier size, which counts the OP_RETURN
// opcode and the push opcodes as well as the data itself.
func NullDataScript(data []byte) ([]byte, er.R) {
	script, err := scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_RETURN).
		AddData(data).Script()
	if err != nil {
		return nil, err
	}

	if uint(len(script)) > globalcfg.MaxDataCarrierBytes() {
		str := fmt.Sprintf("script size %d is larger than max "+
			"allowed size %d", len(script), globalcfg.MaxDataCarrierBytes())
		return nil, txscripterr.ScriptError(txscripterr.ErrTooMuchNullData, str)
	}

	return script, nil
}

// MultiSigScript returns a valid script for a multisignature redemption where
// nrequired of the keys in pubkeys are required to have signed the transaction
// for success.  An Error with the error code ErrTooManyRequiredSigs will be
// returned if nrequired is larger than the number of keys provided.  Both
// counts are encoded as small integer opcodes, so scripts built with more
// than 16 keys will not classify as multisig.
func MultiSigScript(pubkeys []*btcutil.AddressPubKey, nrequired int) ([]byte, er.R) {
	if len(pubkeys) < nrequired {
		str := fmt.Sprintf("unable to generate multisig script with "+
			"%d required signatures when there are only %d public "+
			"keys available", nrequired, len(pubkeys))
		return nil, txscripterr.ScriptError(txscripterr.ErrTooManyRequiredSigs, str)
	}

	builder := scriptbuilder.NewScriptBuilder().AddInt64(int64(nrequired))
	for _, key := range pubkeys {
		builder.AddData(key.ScriptAddress())
	}
	builder.AddInt64(int64(len(pubkeys)))
	builder.AddOp(opcode.OP_CHECKMULTISIG)

	return builder.Script()
}

// WitnessScriptForRedeem returns the version 0 witness program paying to the
// passed redeem script: the pubkey hash program when the redeem script is a
// pay-to-pubkey or pay-to-pubkey-hash script and the script hash program of
// its SHA256 otherwise.
func WitnessScriptForRedeem(redeemScript []byte) ([]byte, er.R) {
	class, solutions, _ := Solver(redeemScript)
	switch class {
	case PubKeyTy:
		return payToWitnessPubKeyHashScript(btcutil.Hash160(solutions[0]))
	case PubKeyHashTy:
		return payToWitnessPubKeyHashScript(solutions[0])
	}

	scriptHash := sha256.Sum256(redeemScript)
	return payToWitnessScriptHashScript(scriptHash[:])
}

// PushedData returns an array of byte slices containing any pushed data found
// in the passed script.  This includes OP_0, but not OP_1 - OP_16.
func PushedData(script []byte) ([][]byte, er.R) {
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return nil, err
	}

	var data [][]byte
	for _, pop := range pops {
		if pop.Data != nil {
			data = append(data, pop.Data)
		} else if pop.Opcode.Value == opcode.OP_0 {
			data = append(data, nil)
		}
	}
	return data, nil
}

// ExtractPkScriptAddr returns the script class and the single address the
// passed public key script pays to.  Script types which do not pay to one
// identifiable destination, bare multisig and null data outputs among them,
// return ErrUnsupportedScriptType.
func ExtractPkScriptAddr(pkScript []byte, chainParams *chaincfg.Params) (ScriptClass, btcutil.Address, er.R) {
	return ExtractPkScriptAddrWithFlags(pkScript, 0, chainParams)
}

// ExtractPkScriptAddrWithFlags behaves as ExtractPkScriptAddr with the
// passed solver flags applied.
func ExtractPkScriptAddrWithFlags(pkScript []byte, flags SolverFlags,
	chainParams *chaincfg.Params) (ScriptClass, btcutil.Address, er.R) {

	class, solutions, err := SolverWithFlags(pkScript, flags)
	if err != nil {
		return class, nil, err
	}

	switch class {
	case PubKeyTy:
		// The solver guarantees the push sizing but not that the key is
		// actually on the curve, so the script is rejected here when it
		// is not.  The destination is the pubkey hash of the key.
		addr, err := btcutil.NewAddressPubKey(solutions[0], chainParams)
		if err != nil {
			return class, nil, err
		}
		return class, addr.AddressPubKeyHash(), nil

	case PubKeyHashTy, ColorPubKeyHashTy:
		// The color identifier does not alter the destination, both
		// forms pay to the hash bound by the first solution.
		addr, err := btcutil.NewAddressPubKeyHash(solutions[0], chainParams)
		if err != nil {
			return class, nil, err
		}
		return class, addr, nil

	case ScriptHashTy, ColorScriptHashTy:
		addr, err := btcutil.NewAddressScriptHashFromHash(solutions[0], chainParams)
		if err != nil {
			return class, nil, err
		}
		return class, addr, nil

	case WitnessV0PubKeyHashTy:
		addr, err := btcutil.NewAddressWitnessPubKeyHash(solutions[0], chainParams)
		if err != nil {
			return class, nil, err
		}
		return class, addr, nil

	case WitnessV0ScriptHashTy:
		addr, err := btcutil.NewAddressWitnessScriptHash(solutions[0], chainParams)
		if err != nil {
			return class, nil, err
		}
		return class, addr, nil

	case WitnessUnknownTy:
		addr, err := btcutil.NewAddressWitnessUnknown(solutions[0][0],
			solutions[1], chainParams)
		if err != nil {
			return class, nil, err
		}
		return class, addr, nil
	}

	// Multisig scripts have more than one address, null data scripts have
	// none at all.
	str := fmt.Sprintf("no single address for script class %v", class)
	return class, nil, txscripterr.ScriptError(txscripterr.ErrUnsupportedScriptType, str)
}

// ExtractPkScriptAddrs returns the type of script, addresses and required
// signatures associated with the passed PkScript.  Note that it only works
// for 'standard' transaction script types.  Multisig public keys which are
// invalid are omitted from the results.
func ExtractPkScriptAddrs(pkScript []byte, chainParams *chaincfg.Params) (ScriptClass, []btcutil.Address, int, er.R) {
	return ExtractPkScriptAddrsWithFlags(pkScript, 0, chainParams)
}

// ExtractPkScriptAddrsWithFlags behaves as ExtractPkScriptAddrs with the
// passed solver flags applied.
func ExtractPkScriptAddrsWithFlags(pkScript []byte, flags SolverFlags,
	chainParams *chaincfg.Params) (ScriptClass, []btcutil.Address, int, er.R) {

	class, solutions, err := SolverWithFlags(pkScript, flags)
	if err != nil {
		return NonStandardTy, nil, 0, err
	}

	switch class {
	case NullDataTy:
		// This is data, not addresses.
		return class, nil, 0, txscripterr.ScriptError(
			txscripterr.ErrUnsupportedScriptType,
			"null data script carries data, not addresses")

	case MultiSigTy:
		// The solver binds the signature count first and the key count
		// last with one push per public key in between.  Extract the
		// keys while skipping any that are invalid.
		requiredSigs := int(solutions[0][0])
		addrs := make([]btcutil.Address, 0, len(solutions)-2)
		for _, pubKey := range solutions[1 : len(solutions)-1] {
			addr, err := btcutil.NewAddressPubKey(pubKey, chainParams)
			if err == nil {
				addrs = append(addrs, addr)
			}
		}
		if len(addrs) == 0 {
			return class, nil, 0, txscripterr.ScriptError(
				txscripterr.ErrUnsupportedScriptType,
				"multisig script contains no valid public keys")
		}
		return class, addrs, requiredSigs, nil
	}

	// Everything else pays to at most one destination.
	_, addr, err := ExtractPkScriptAddrWithFlags(pkScript, flags, chainParams)
	if err != nil {
		return class, nil, 0, err
	}
	return class, []btcutil.Address{addr}, 1, nil
}

// PkScriptToAddress returns the address corrisponding to a script.  Most
// scripts are able to be represented directly as addresses, but if there is
// a script which is not directly parsable, this function will return
// "script:" followed by a base-64 representation of the pkScript itself such
// that it can be decoded later.
func PkScriptToAddress(pkScript []byte, chainParams *chaincfg.Params) btcutil.Address {
	_, addr, err := ExtractPkScriptAddr(pkScript, chainParams)
	if err != nil {
		return btcutil.NewAddressNonStandard(pkScript)
	}
	return addr
}
