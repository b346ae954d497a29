package txscript

import (
	"os"
	"testing"

	"github.com/chaintope/tapyrusd/chaincfg/globalcfg"
)

func TestMain(m *testing.M) {
	globalcfg.SelectConfig(globalcfg.TapyrusDefaults())
	os.Exit(m.Run())
}
