// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscripterr

import (
	"github.com/chaintope/tapyrusd/btcutil/er"
)

// Err identifies a kind of script error.
var Err er.ErrorType = er.NewErrorType("txscript.Err")

// These constants are used to identify a specific Error.
var (
	// ---------------------------------------
	// Failures related to improper API usage.
	// ---------------------------------------

	// ErrUnsupportedAddress is returned when a concrete type that
	// implements a btcutil.Address is not a supported type.
	ErrUnsupportedAddress = Err.Code("ErrUnsupportedAddress")

	// ErrUnsupportedScriptType is returned when an address is requested for
	// a script whose type does not pay to a single identifiable
	// destination, such as bare multisig or data carrier outputs.
	ErrUnsupportedScriptType = Err.Code("ErrUnsupportedScriptType")

	// ErrNotMultisigScript is returned from CalcMultiSigStats when the
	// provided script is not a multisig script.
	ErrNotMultisigScript = Err.Code("ErrNotMultisigScript")

	// ErrTooManyRequiredSigs is returned from MultiSigScript when the
	// specified number of required signatures is larger than the number of
	// provided public keys.
	ErrTooManyRequiredSigs = Err.Code("ErrTooManyRequiredSigs")

	// ErrTooMuchNullData is returned from NullDataScript when the length of
	// the provided data exceeds MaxDataCarrierSize.
	ErrTooMuchNullData = Err.Code("ErrTooMuchNullData")

	// --------------------------------------------
	// Failures related to improper use of opcodes.
	// --------------------------------------------

	// ErrMalformedPush is returned when a data push opcode tries to push
	// more bytes than are left in the script.
	ErrMalformedPush = Err.Code("ErrMalformedPush")

	// ErrScriptNotCanonical is returned when a script builder operation
	// would produce a non-canonical script, such as a data push that is not
	// encoded with the smallest possible opcode or a script that exceeds
	// the maximum allowed size.
	ErrScriptNotCanonical = Err.Code("ErrScriptNotCanonical")

	// ---------------------------------
	// Failures related to malleability.
	// ---------------------------------

	// ErrMinimalData is returned when interpreting a number that is not
	// encoded with the smallest possible number of bytes or when a data
	// push is not using the minimal opcode required.
	ErrMinimalData = Err.Code("ErrMinimalData")

	// ErrNumberTooBig is returned when the argument for an opcode that
	// expects numeric input is larger than the expected maximum number of
	// bytes.
	ErrNumberTooBig = Err.Code("ErrNumberTooBig")

	// ---------------------------------------------
	// Failures related to script classification.
	// ---------------------------------------------

	// ErrNonStandardScript is returned when a script does not match any of
	// the recognized templates and its opcode stream fails the syntax
	// check, so it does not qualify as a custom script either.
	ErrNonStandardScript = Err.Code("ErrNonStandardScript")

	// -------------------------------------
	// Failures related to colored outputs.
	// -------------------------------------

	// ErrInvalidColorId is returned when a color identifier does not
	// consist of a known type byte followed by a 32 byte payload.
	ErrInvalidColorId = Err.Code("ErrInvalidColorId")

	// ErrColorNotFound is returned when a color identifier is requested
	// from a script which does not contain an OP_COLOR opcode.
	ErrColorNotFound = Err.Code("ErrColorNotFound")

	// ----------------------------------------
	// Failures related to segregated witness.
	// ----------------------------------------

	// ErrWitnessProgramMismatch is returned when the version and program
	// are requested from a script which is not a witness program.
	ErrWitnessProgramMismatch = Err.Code("ErrWitnessProgramMismatch")
)

// ScriptError creates an Error given a set of arguments.
func ScriptError(c *er.ErrorCode, desc string) er.R {
	return c.New(desc, nil)
}
