// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol_test

import (
	"testing"

	"github.com/chaintope/tapyrusd/wire/protocol"
)

// TestTapyrusNetStringer tests the stringized output for tapyrus net types.
func TestTapyrusNetStringer(t *testing.T) {
	tests := []struct {
		in   protocol.TapyrusNet
		want string
	}{
		{protocol.ProdNet, "ProdNet"},
		{protocol.DevNet, "DevNet"},
		{protocol.RegressionNet, "RegressionNet"},
		{0xffffffff, "Unknown TapyrusNet (4294967295)"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}
