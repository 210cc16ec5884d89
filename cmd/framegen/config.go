package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/goldcrest-btc/goldcrestd/chaincfg"
	"github.com/goldcrest-btc/goldcrestd/version"
)

const (
	defaultLogFilename    = "framegen.log"
	defaultErrLogFilename = "framegen_err.log"
)

var (
	// Default network parameters
	activeNetParams = &chaincfg.MainNetParams

	// Default configuration options
	defaultHomeDir    = btcutil.AppDataDir("framegen", false)
	defaultLogFile    = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile = filepath.Join(defaultHomeDir, defaultErrLogFilename)
)

type configFlags struct {
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
	OutFile      string `short:"o" long:"outfile" description:"File to write the capture to. If omitted, writes to stdout."`
	GarbageBytes uint   `short:"g" long:"garbage" description:"Number of random garbage bytes to emit before each frame to exercise resynchronization"`
	TestNet      bool   `long:"testnet" description:"Generate testnet frames"`
	RegTest      bool   `long:"regtest" description:"Generate regression test network frames"`
	SimNet       bool   `long:"simnet" description:"Generate simulation test network frames"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if cfg.TestNet {
		numNets++
		activeNetParams = &chaincfg.TestNet3Params
	}
	if cfg.RegTest {
		numNets++
		activeNetParams = &chaincfg.RegressionNetParams
	}
	if cfg.SimNet {
		numNets++
		activeNetParams = &chaincfg.SimNetParams
	}
	if numNets > 1 {
		return nil, errors.New("the testnet, regtest, and simnet params " +
			"can't be used together -- choose one of the three")
	}

	initLog(defaultLogFile, defaultErrLogFile)

	return cfg, nil
}
