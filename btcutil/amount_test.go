// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil_test

import (
	"math"
	"testing"

	. "github.com/chaintope/tapyrusd/btcutil"
)

func TestAmountCreation(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		valid    bool
		expected Amount
	}{
		// Positive tests.
		{
			name:     "zero",
			amount:   0,
			valid:    true,
			expected: 0,
		},
		{
			name:     "max producible",
			amount:   21e6,
			valid:    true,
			expected: MaxUnits(),
		},
		{
			name:     "min producible",
			amount:   -21e6,
			valid:    true,
			expected: -MaxUnits(),
		},
		{
			name:     "exceeds max producible",
			amount:   21e6 + 1e-8,
			valid:    true,
			expected: MaxUnits() + 1,
		},
		{
			name:     "one hundred",
			amount:   100,
			valid:    true,
			expected: 100 * UnitsPerCoin(),
		},
		{
			name:     "fraction",
			amount:   0.01234567,
			valid:    true,
			expected: 1234567,
		},
		{
			name:     "rounding up",
			amount:   54.999999999999943157,
			valid:    true,
			expected: 55 * UnitsPerCoin(),
		},
		{
			name:     "rounding down",
			amount:   55.000000000000056843,
			valid:    true,
			expected: 55 * UnitsPerCoin(),
		},

		// Negative tests.
		{
			name:   "not-a-number",
			amount: math.NaN(),
			valid:  false,
		},
		{
			name:   "-infinity",
			amount: math.Inf(-1),
			valid:  false,
		},
		{
			name:   "+infinity",
			amount: math.Inf(1),
			valid:  false,
		},
	}

	for _, test := range tests {
		a, err := NewAmount(test.amount)
		switch {
		case test.valid && err != nil:
			t.Errorf("%v: Positive test Amount creation failed with: %v",
				test.name, err)
			continue
		case !test.valid && err == nil:
			t.Errorf("%v: Negative test Amount creation succeeded (value %v) "+
				"when should fail", test.name, a)
			continue
		}

		if a != test.expected {
			t.Errorf("%v: Created amount %v does not match expected %v",
				test.name, a, test.expected)
			continue
		}
	}
}

func TestAmountUnitConversions(t *testing.T) {
	tests := []struct {
		name      string
		amount    Amount
		unit      string
		converted float64
		s         string
	}{
		{
			name:      "kTPC",
			amount:    MaxUnits(),
			unit:      "kTPC",
			converted: 21000,
			s:         "21000 kTPC",
		},
		{
			name:      "TPC",
			amount:    44433322211100,
			unit:      "TPC",
			converted: 444333.222111,
			s:         "444333.222111 TPC",
		},
		{
			name:      "mTPC",
			amount:    44433322211100,
			unit:      "mTPC",
			converted: 444333222.111,
			s:         "444333222.111 mTPC",
		},
		{

			name:      "uTPC",
			amount:    44433322211100,
			unit:      "uTPC",
			converted: 444333222111,
			s:         "444333222111 μTPC",
		},
		{

			name:      "tapyrus",
			amount:    44433322211100,
			unit:      "tapyrus",
			converted: 44433322211100,
			s:         "44433322211100 tapyrus",
		},
		{
			// Converting to a unit that isn't known must fail.
			name:      "non-standard unit",
			amount:    44433322211100,
			unit:      "kmTPC",
			converted: math.NaN(),
			s:         "",
		},
	}

	for _, test := range tests {
		f, err := test.amount.ToUnit(test.unit)
		if err != nil {
			if !math.IsNaN(test.converted) {
				t.Errorf("%v: converting amount %v to unit %v failed: %v",
					test.name, test.amount, test.unit, err)
			}
			if _, err := test.amount.Format(test.unit); err == nil {
				t.Errorf("%v: formatting to an unknown unit succeeded",
					test.name)
			}
			continue
		}
		if f != test.converted {
			t.Errorf("%v: converted value %v does not match expected %v",
				test.name, f, test.converted)
			continue
		}

		s, err := test.amount.Format(test.unit)
		if err != nil {
			t.Errorf("%v: formatting amount %v as %v failed: %v",
				test.name, test.amount, test.unit, err)
			continue
		}
		if s != test.s {
			t.Errorf("%v: format '%v' does not match expected '%v'",
				test.name, s, test.s)
			continue
		}

		// Verify that the default unit is used by the stringer.
		if test.unit == "TPC" {
			if str := test.amount.String(); str != test.s {
				t.Errorf("%v: stringer '%v' does not match expected '%v'",
					test.name, str, test.s)
				continue
			}
			if f := test.amount.ToTPC(); f != test.converted {
				t.Errorf("%v: ToTPC value %v does not match expected %v",
					test.name, f, test.converted)
				continue
			}
		}
	}
}

func TestAmountMulF64(t *testing.T) {
	tests := []struct {
		name string
		amt  Amount
		mul  float64
		res  Amount
	}{
		{
			name: "Multiply 0.1 TPC by 2",
			amt:  100e5, // 0.1 TPC
			mul:  2,
			res:  200e5, // 0.2 TPC
		},
		{
			name: "Multiply 0.2 TPC by 0.02",
			amt:  200e5, // 0.2 TPC
			mul:  1.02,
			res:  204e5, // 0.204 TPC
		},
		{
			name: "Multiply 0.1 TPC by -2",
			amt:  100e5, // 0.1 TPC
			mul:  -2,
			res:  -200e5, // -0.2 TPC
		},
		{
			name: "Multiply 0.2 TPC by -0.02",
			amt:  200e5, // 0.2 TPC
			mul:  -1.02,
			res:  -204e5, // -0.204 TPC
		},
		{
			name: "Multiply -0.1 TPC by 2",
			amt:  -100e5, // -0.1 TPC
			mul:  2,
			res:  -200e5, // -0.2 TPC
		},
		{
			name: "Multiply -0.2 TPC by 0.02",
			amt:  -200e5, // -0.2 TPC
			mul:  1.02,
			res:  -204e5, // -0.204 TPC
		},
		{
			name: "Multiply -0.1 TPC by -2",
			amt:  -100e5, // -0.1 TPC
			mul:  -2,
			res:  200e5, // 0.2 TPC
		},
		{
			name: "Multiply -0.2 TPC by -0.02",
			amt:  -200e5, // -0.2 TPC
			mul:  -1.02,
			res:  204e5, // 0.204 TPC
		},
		{
			name: "Round down",
			amt:  49, // 49 tapyrus
			mul:  0.01,
			res:  0,
		},
		{
			name: "Round up",
			amt:  50, // 50 tapyrus
			mul:  0.01,
			res:  1, // 1 tapyrus
		},
		{
			name: "Multiply by 0.",
			amt:  1e8, // 1 TPC
			mul:  0,
			res:  0, // 0 TPC
		},
		{
			name: "Multiply 1 by 0.5.",
			amt:  1, // 1 tapyrus
			mul:  0.5,
			res:  1, // 1 tapyrus
		},
		{
			name: "Multiply 100 by 66%.",
			amt:  100, // 100 tapyrus
			mul:  0.66,
			res:  66, // 66 tapyrus
		},
		{
			name: "Multiply 100 by 66.6%.",
			amt:  100, // 100 tapyrus
			mul:  0.666,
			res:  67, // 67 tapyrus
		},
		{
			name: "Multiply 100 by 66.66%.",
			amt:  100, // 100 tapyrus
			mul:  0.6666,
			res:  67, // 67 tapyrus
		},
	}

	for _, test := range tests {
		a := test.amt.MulF64(test.mul)
		if a != test.res {
			t.Errorf("%v: expected %v got %v", test.name, test.res, a)
		}
	}
}
