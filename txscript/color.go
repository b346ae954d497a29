// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/chaintope/tapyrusd/btcutil/er"
	"github.com/chaintope/tapyrusd/txscript/opcode"
	"github.com/chaintope/tapyrusd/txscript/parsescript"
	"github.com/chaintope/tapyrusd/txscript/txscripterr"
)

// ColorType identifies how the asset named by a color identifier was issued
// and what reissuance rules apply to it.
type ColorType byte

// The color types embedded as the first byte of a color identifier.
const (
	// ColorNone is the uncolored default.  It never appears in a script.
	ColorNone ColorType = 0x00

	// ColorReissuable tokens commit to the issuing script so the issuer
	// can mint more of them later.
	ColorReissuable ColorType = 0x01

	// ColorNonReissuable tokens commit to the out point spent at issue so
	// the supply is fixed.
	ColorNonReissuable ColorType = 0x02

	// ColorNFT is a non-reissuable token with a supply of one.
	ColorNFT ColorType = 0x03
)

// ColorIdentifierSize is the size in bytes of a serialized color identifier:
// one type byte followed by a 32 byte payload.
const ColorIdentifierSize = 33

// String returns the color type as a human-readable word.
func (t ColorType) String() string {
	switch t {
	case ColorNone:
		return "none"
	case ColorReissuable:
		return "reissuable"
	case ColorNonReissuable:
		return "nonreissuable"
	case ColorNFT:
		return "nft"
	}
	return fmt.Sprintf("unknown(%#02x)", byte(t))
}

// validColorType returns whether the byte is a color type which may appear
// in a script.  ColorNone is not included.
func validColorType(t byte) bool {
	switch ColorType(t) {
	case ColorReissuable, ColorNonReissuable, ColorNFT:
		return true
	}
	return false
}

// ColorIdentifier names a colored coin: a type byte describing the issuance
// rules followed by a 32 byte payload committing to the issuing script or
// out point.  The zero value has type ColorNone and stands for the default
// uncolored coin.
type ColorIdentifier struct {
	Type    ColorType
	Payload [32]byte
}

// Bytes returns the 33 byte serialization pushed in front of OP_COLOR.
func (c *ColorIdentifier) Bytes() []byte {
	b := make([]byte, 0, ColorIdentifierSize)
	b = append(b, byte(c.Type))
	b = append(b, c.Payload[:]...)
	return b
}

// String returns the hex encoding of the serialized identifier.
func (c *ColorIdentifier) String() string {
	return hex.EncodeToString(c.Bytes())
}

// NewColorIdentifierFromBytes deserializes a 33 byte color identifier.  An
// Error with the error code ErrInvalidColorId is returned when the length is
// wrong or the type byte is not one of the known color types.
func NewColorIdentifierFromBytes(b []byte) (*ColorIdentifier, er.R) {
	if len(b) != ColorIdentifierSize {
		str := fmt.Sprintf("color identifier must be %d bytes, got %d",
			ColorIdentifierSize, len(b))
		return nil, txscripterr.ScriptError(txscripterr.ErrInvalidColorId, str)
	}
	if !validColorType(b[0]) {
		str := fmt.Sprintf("unknown color type %#02x", b[0])
		return nil, txscripterr.ScriptError(txscripterr.ErrInvalidColorId, str)
	}

	c := ColorIdentifier{Type: ColorType(b[0])}
	copy(c.Payload[:], b[1:])
	return &c, nil
}

// popSize returns the number of script bytes the parsed opcode occupies,
// counting the opcode itself, any length prefix and the pushed data.
func popSize(pop *parsescript.ParsedOpcode) int {
	if pop.Opcode.Length > 0 {
		return pop.Opcode.Length
	}
	return 1 - pop.Opcode.Length + len(pop.Data)
}

// matchCustomColoredScript scans for the generic colored construction of a
// 33 byte push immediately followed by OP_COLOR anywhere in the script,
// returning the pushed color identifier when found.  The scan locates the
// first raw 0x21 byte and independently tokenizes forward for the first
// OP_COLOR, matching only when that opcode sits exactly one 33 byte push
// after the 0x21.  Opcodes parsed before a tokenization failure still
// count, anything at or past the failure does not.
func matchCustomColoredScript(script []byte) []byte {
	p := bytes.IndexByte(script, opcode.OP_DATA_33)
	if p < 0 {
		return nil
	}

	pops, _ := parsescript.ParseScript(script)

	offset := 0
	for i := range pops {
		if pops[i].Opcode.Value == opcode.OP_COLOR {
			if offset == p+ColorIdentifierSize+1 {
				return script[p+1 : p+1+ColorIdentifierSize]
			}
			return nil
		}
		offset += popSize(&pops[i])
	}
	return nil
}

// ColorIdFromScript extracts the color identifier gating the passed script.
// The strict colored templates are recognized through the solver, after
// which the generic construction is looked for anywhere in the script.  An
// Error with the error code ErrColorNotFound is returned when the script
// carries no color construction at all, and one with ErrInvalidColorId when
// a construction is present but its type byte is not a known color type.
func ColorIdFromScript(script []byte) (*ColorIdentifier, er.R) {
	class, solutions, _ := Solver(script)
	switch class {
	case ColorPubKeyHashTy, ColorScriptHashTy:
		return NewColorIdentifierFromBytes(solutions[1])
	}

	if colorID := matchCustomColoredScript(script); colorID != nil {
		return NewColorIdentifierFromBytes(colorID)
	}

	return nil, txscripterr.ScriptError(txscripterr.ErrColorNotFound,
		"script has no color identifier")
}
