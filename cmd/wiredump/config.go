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
	"github.com/goldcrest-btc/goldcrestd/logger"
	"github.com/goldcrest-btc/goldcrestd/version"
)

const (
	defaultConfigFilename = "wiredump.conf"
	defaultLogFilename    = "wiredump.log"
	defaultErrLogFilename = "wiredump_err.log"
	defaultLogLevel       = "info"
)

var (
	// Default network parameters
	activeNetParams = &chaincfg.MainNetParams

	// Default configuration options
	defaultHomeDir    = btcutil.AppDataDir("wiredump", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogFile    = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile = filepath.Join(defaultHomeDir, defaultErrLogFilename)
)

// config defines the configuration options for wiredump.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	InFile      string `short:"i" long:"infile" description:"Capture file to scan"`
	HexInput    bool   `long:"hex" description:"Treat the capture file as one hex-encoded frame stream per line instead of raw binary"`
	Listen      string `short:"l" long:"listen" description:"Listen on address:port and scan inbound connections instead of reading a file"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	TestNet     bool   `long:"testnet" description:"Scan testnet frames"`
	RegTest     bool   `long:"regtest" description:"Scan regression test network frames"`
	SimNet      bool   `long:"simnet" description:"Scan simulation test network frames"`
}

func loadConfig() (*config, error) {
	err := os.MkdirAll(defaultHomeDir, 0700)
	if err != nil {
		// Show a nicer error message if it's because a symlink is
		// linked to a directory that does not exist (probably because
		// it's not mounted).
		if e, ok := err.(*os.PathError); ok && os.IsExist(err) {
			if link, lerr := os.Readlink(e.Path); lerr == nil {
				str := "is symlink %s -> %s mounted?"
				err = fmt.Errorf(str, e.Path, link)
			}
		}

		str := "failed to create home directory: %v"
		err := fmt.Errorf(str, err)
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err = preParser.Parse()
	if err != nil {
		e, ok := err.(*flags.Error)
		if ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		preParser.WriteHelp(os.Stderr)
		return nil, err
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "Error parsing config "+
				"file: %v\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	_, err = parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
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
		str := "the testnet, regtest, and simnet params can't be used " +
			"together -- choose one of the three"
		err := errors.New(str)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, err
	}

	// Exactly one input source must be selected.
	if cfg.InFile == "" && cfg.Listen == "" {
		str := "either --infile or --listen must be specified"
		err := errors.New(str)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, err
	}
	if cfg.InFile != "" && cfg.Listen != "" {
		str := "--infile and --listen can't be used together"
		err := errors.New(str)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, err
	}

	if _, ok := logger.LevelFromString(cfg.DebugLevel); !ok {
		str := "the specified debug level [%s] is invalid"
		err := errors.Errorf(str, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, err
	}

	if cfg.Listen != "" {
		cfg.Listen, err = activeNetParams.NormalizeAddress(cfg.Listen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, err
		}
	}

	initLog(defaultLogFile, defaultErrLogFile)
	err = log.ParseAndSetLogLevel(cfg.DebugLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	return &cfg, nil
}
