// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptnum

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"

	"github.com/chaintope/tapyrusd/btcutil/er"
	"github.com/chaintope/tapyrusd/txscript/txscripterr"
)

// TestScriptNumBytes ensures the serialization carries the sign in the high
// bit of the last byte and grows an extra byte when that bit is taken.
func TestScriptNumBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		num        ScriptNum
		serialized []byte
	}{
		{0, nil},
		{1, []byte{0x01}},
		{-1, []byte{0x81}},
		{127, []byte{0x7f}},
		{-127, []byte{0xff}},
		{128, []byte{0x80, 0x00}},
		{-128, []byte{0x80, 0x80}},
		{129, []byte{0x81, 0x00}},
		{-129, []byte{0x81, 0x80}},
		{256, []byte{0x00, 0x01}},
		{-256, []byte{0x00, 0x81}},
		{32767, []byte{0xff, 0x7f}},
		{-32767, []byte{0xff, 0xff}},
		{32768, []byte{0x00, 0x80, 0x00}},
		{-32768, []byte{0x00, 0x80, 0x80}},
		{65535, []byte{0xff, 0xff, 0x00}},
		{-65535, []byte{0xff, 0xff, 0x80}},
		{8388608, []byte{0x00, 0x00, 0x80, 0x00}},
		{-8388608, []byte{0x00, 0x00, 0x80, 0x80}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0x7f}},
		{-2147483647, []byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, test := range tests {
		gotBytes := test.num.Bytes()
		if !bytes.Equal(gotBytes, test.serialized) {
			t.Errorf("Bytes: did not get expected bytes for %d - "+
				"got %x, want %x", test.num, gotBytes,
				test.serialized)
			continue
		}
	}
}

// TestMakeScriptNum ensures decoding honors the length window and the
// minimal encoding requirement.
func TestMakeScriptNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		serialized      []byte
		num             ScriptNum
		numLen          int
		minimalEncoding bool
		err             *er.ErrorCode
	}{
		// Minimal encodings round trip.
		{nil, 0, DefaultScriptNumLen, true, nil},
		{[]byte{0x01}, 1, DefaultScriptNumLen, true, nil},
		{[]byte{0x81}, -1, DefaultScriptNumLen, true, nil},
		{[]byte{0xff, 0x7f}, 32767, DefaultScriptNumLen, true, nil},
		{[]byte{0xff, 0xff}, -32767, DefaultScriptNumLen, true, nil},
		{[]byte{0xff, 0xff, 0xff, 0x7f}, 2147483647, DefaultScriptNumLen,
			true, nil},
		{[]byte{0xff, 0xff, 0xff, 0xff}, -2147483647, DefaultScriptNumLen,
			true, nil},

		// Values longer than the window are rejected regardless of
		// content, and accepted when the caller widens it.
		{[]byte{0x01, 0x00, 0x00, 0x00, 0x00}, 0, DefaultScriptNumLen,
			false, txscripterr.ErrNumberTooBig},
		{[]byte{0x01, 0x00, 0x00, 0x00, 0x00}, 1, 5, false, nil},

		// Non-minimal encodings only error when asked to.
		{[]byte{0x00}, 0, DefaultScriptNumLen, true,
			txscripterr.ErrMinimalData},
		{[]byte{0x80}, 0, DefaultScriptNumLen, true,
			txscripterr.ErrMinimalData},
		{[]byte{0x01, 0x00}, 0, DefaultScriptNumLen, true,
			txscripterr.ErrMinimalData},
		{[]byte{0x00}, 0, DefaultScriptNumLen, false, nil},
		{[]byte{0x80}, 0, DefaultScriptNumLen, false, nil},
		{[]byte{0x01, 0x00}, 1, DefaultScriptNumLen, false, nil},
	}

	for _, test := range tests {
		num, err := MakeScriptNum(test.serialized, test.minimalEncoding,
			test.numLen)
		if test.err != nil {
			if !test.err.Is(err) {
				t.Errorf("MakeScriptNum(%x): unexpected error - "+
					"got %v, want %v", test.serialized, err,
					test.err.Default())
			}
			continue
		} else if err != nil {
			t.Errorf("MakeScriptNum(%x): unexpected error %v",
				test.serialized, err)
			continue
		}

		if num != test.num {
			t.Errorf("MakeScriptNum(%x): did not get expected "+
				"number - got %d, want %d", test.serialized,
				num, test.num)
		}
	}
}

// TestScriptNumInt32 ensures conversion clamps rather than truncates.
func TestScriptNumInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ScriptNum
		want int32
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{maxInt32, maxInt32},
		{minInt32, minInt32},
		{maxInt32 + 1, maxInt32},
		{minInt32 - 1, minInt32},
		{5000000000, maxInt32},
		{-5000000000, minInt32},
	}

	for _, test := range tests {
		if got := test.in.Int32(); got != test.want {
			t.Errorf("Int32(%d): got %d, want %d", test.in, got,
				test.want)
		}
	}
}

// TestScriptNumRoundTrip checks that every value the numeric opcodes accept
// serializes within the default window, minimally, and decodes back to
// itself.
func TestScriptNumRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int64Range(minInt32+1, maxInt32).Draw(rt, "v").(int64)
		num := ScriptNum(v)

		serialized := num.Bytes()
		if len(serialized) > DefaultScriptNumLen {
			rt.Fatalf("%d serialized to %d bytes", v, len(serialized))
		}

		decoded, err := MakeScriptNum(serialized, true, DefaultScriptNumLen)
		if err != nil {
			rt.Fatalf("%d did not serialize minimally: %v", v, err)
		}
		if decoded != num {
			rt.Fatalf("%d round tripped to %d", v, int64(decoded))
		}
	})
}

// TestScriptNumMinimalIsCanonical checks that when a byte sequence passes the
// minimal encoding requirement, re-serializing the decoded value reproduces
// the sequence exactly.
func TestScriptNumMinimalIsCanonical(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		serialized := rapid.SliceOfN(rapid.Byte(), 0, DefaultScriptNumLen).
			Draw(rt, "serialized").([]byte)

		num, err := MakeScriptNum(serialized, true, DefaultScriptNumLen)
		if err != nil {
			// Not minimal, nothing to check.
			return
		}
		if !bytes.Equal(num.Bytes(), serialized) {
			rt.Fatalf("%x decoded to %d which serializes to %x",
				serialized, int64(num), num.Bytes())
		}
	})
}
