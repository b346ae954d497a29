// Copyright (c) 2019 Chaintope Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/json-iterator/go"

	"github.com/chaintope/tapyrusd/btcutil"
	"github.com/chaintope/tapyrusd/btcutil/er"
	"github.com/chaintope/tapyrusd/btcutil/util"
	"github.com/chaintope/tapyrusd/chaincfg"
	"github.com/chaintope/tapyrusd/chaincfg/globalcfg"
	"github.com/chaintope/tapyrusd/tapconfig/version"
	"github.com/chaintope/tapyrusd/taplog/log"
	"github.com/chaintope/tapyrusd/txscript"
)

type config struct {
	Network         string `short:"n" long:"network" description:"Network to encode addresses for: prod, dev or regtest" default:"prod"`
	JSON            bool   `short:"j" long:"json" description:"Emit one JSON document per script instead of text"`
	Witness         bool   `short:"w" long:"witness" description:"Decode witness programs to their own script classes"`
	NoDataCarrier   bool   `long:"nodatacarrier" description:"Report data carrier outputs as rejected by relay policy"`
	DataCarrierSize uint   `long:"datacarriersize" description:"Maximum serialized size of a data carrier script relay policy accepts" default:"83"`
	DebugLevel      string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
	Version         bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// decodedScript is the result of decoding one public key script.
type decodedScript struct {
	Script    string   `json:"script"`
	Asm       string   `json:"asm"`
	Type      string   `json:"type"`
	SigOps    int      `json:"sigOps"`
	ReqSigs   int      `json:"reqSigs,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
	ColorId   string   `json:"colorId,omitempty"`
	Token     string   `json:"token,omitempty"`
	Data      []string `json:"data,omitempty"`
	Relay     *bool    `json:"relay,omitempty"`
	P2SH      string   `json:"p2sh,omitempty"`
}

func main() {
	version.SetUserAgentName("decodescript")

	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] SCRIPT_HEX..."
	args, errr := parser.Parse()
	if errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return
	}

	if cfg.Version {
		fmt.Printf("%s version %s\n", version.UserAgentName(), version.Version())
		return
	}

	if err := log.SetLogLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err.String())
		os.Exit(1)
	}
	log.WarnIfPrerelease()

	var chainParams *chaincfg.Params
	switch cfg.Network {
	case "prod":
		chainParams = &chaincfg.ProdNetParams
	case "dev":
		chainParams = &chaincfg.DevNetParams
	case "regtest":
		chainParams = &chaincfg.RegressionNetParams
	default:
		fmt.Fprintf(os.Stderr, "unknown network [%s]\n", cfg.Network)
		os.Exit(1)
	}

	// Each network carries its own relay policy defaults, the command line
	// overrides them.
	conf := chainParams.GlobalConf
	if cfg.Witness {
		conf.DecodeWitnessProgram = true
	}
	conf.AcceptDataCarrier = !cfg.NoDataCarrier
	conf.MaxDataCarrierBytes = cfg.DataCarrierSize
	globalcfg.SelectConfig(conf)

	// The solver does not read the global config itself, witness decoding
	// is handed to it as a flag.
	var solverFlags txscript.SolverFlags
	if globalcfg.DecodeWitnessProgram() {
		solverFlags |= txscript.SFDecodeWitness
	}

	// With no scripts on the command line, read one hex script per line
	// from stdin.
	if len(args) == 0 {
		args = readScriptLines(os.Stdin)
	}
	log.Debugf("Decoding %d scripts for network [%s]", len(args), chainParams.Name)

	failures := 0
	for _, arg := range args {
		if err := decodeOne(arg, solverFlags, chainParams, cfg.JSON); err != nil {
			log.Errorf("Unable to decode script [%s]: %s", arg, err)
			failures++
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// readScriptLines collects non-empty lines so scripts can be piped in.
func readScriptLines(f *os.File) []string {
	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func decodeOne(scriptHex string, solverFlags txscript.SolverFlags,
	chainParams *chaincfg.Params, asJSON bool) er.R {

	script, err := util.DecodeHex(strings.TrimSpace(scriptHex))
	if err != nil {
		return err
	}

	class, _, _ := txscript.SolverWithFlags(script, solverFlags)
	dec := decodedScript{
		Script: hex.EncodeToString(script),
		Type:   class.String(),
		SigOps: txscript.GetSigOpCount(script),
	}

	// Disassemble whatever parses, the result carries a marker when the
	// script does not parse to the end.
	dec.Asm, _ = txscript.DisasmString(script)

	_, addrs, reqSigs, err := txscript.ExtractPkScriptAddrsWithFlags(
		script, solverFlags, chainParams)
	if err == nil {
		dec.ReqSigs = reqSigs
		for _, addr := range addrs {
			dec.Addresses = append(dec.Addresses, addr.EncodeAddress())
		}
	} else {
		log.Debugf("No addresses for script [%s]: %s", dec.Script, err)
	}

	// The loose scan picks up colored constructions in custom scripts as
	// well, a script with none at all is simply not colored.
	if colorId, err := txscript.ColorIdFromScript(script); err == nil {
		dec.ColorId = colorId.String()
		dec.Token = colorId.Type.String()
	}

	if class == txscript.NullDataTy {
		if pushes, err := txscript.PushedData(script); err == nil {
			for _, push := range pushes {
				dec.Data = append(dec.Data, hex.EncodeToString(push))
			}
		}
		// Data carrier outputs are gated by their own relay policy knobs.
		relay := globalcfg.AcceptDataCarrier() &&
			uint(len(script)) <= globalcfg.MaxDataCarrierBytes()
		dec.Relay = &relay
	}

	// Like the reference decoder, offer the pay-to-script-hash form of any
	// script which is not itself one.
	if class != txscript.ScriptHashTy && class != txscript.ColorScriptHashTy {
		if p2sh, err := btcutil.NewAddressScriptHash(script, chainParams); err == nil {
			dec.P2SH = p2sh.EncodeAddress()
		}
	}

	if asJSON {
		out, errr := jsoniter.MarshalIndent(&dec, "", "  ")
		if errr != nil {
			return er.E(errr)
		}
		fmt.Println(string(out))
		return nil
	}

	printDecoded(class, &dec)
	return nil
}

func printDecoded(class txscript.ScriptClass, dec *decodedScript) {
	fmt.Printf("script: %s\n", dec.Script)
	fmt.Printf("    type: %s\n", log.ScriptClass(dec.Type))
	fmt.Printf("    asm: %s\n", dec.Asm)
	fmt.Printf("    sigops: %s\n", log.Int(dec.SigOps))
	if len(dec.Addresses) > 0 {
		fmt.Printf("    reqsigs: %s\n", log.Int(dec.ReqSigs))
		for _, addr := range dec.Addresses {
			fmt.Printf("    address: %s\n", log.Address(addr))
		}
	}
	if class.IsColored() || dec.ColorId != "" {
		fmt.Printf("    colorid: %s (%s)\n", log.ColorId(dec.ColorId), dec.Token)
	}
	for _, data := range dec.Data {
		fmt.Printf("    data: %s\n", data)
	}
	if dec.Relay != nil {
		relay := "no"
		if *dec.Relay {
			relay = "yes"
		}
		fmt.Printf("    relay: %s\n", relay)
	}
	if dec.P2SH != "" {
		fmt.Printf("    p2sh: %s\n", dec.P2SH)
	}
}
