// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"fmt"
)

// TapyrusNet represents which tapyrus network a message belongs to.
type TapyrusNet uint32

// Constants used to indicate the message tapyrus network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
//
// The message start of a tapyrus network is derived from its network id by
// adding the id to 33550335 and serializing the result little endian.
const (
	// ProdNet represents the production tapyrus network with network id 1.
	ProdNet TapyrusNet = 0x01fff000

	// DevNet represents the public development tapyrus network with
	// network id 1939510133.
	DevNet TapyrusNet = 0x759a8374

	// RegressionNet represents a locally run development tapyrus network
	// with network id 1905960821.
	RegressionNet TapyrusNet = 0x739a9774
)

// bnStrings is a map of tapyrus networks back to their constant names for
// pretty printing.
var bnStrings = map[TapyrusNet]string{
	ProdNet:       "ProdNet",
	DevNet:        "DevNet",
	RegressionNet: "RegressionNet",
}

// String returns the TapyrusNet in human-readable form.
func (n TapyrusNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown TapyrusNet (%d)", uint32(n))
}
