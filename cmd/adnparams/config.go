// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrenalinecoin/adnd/chaincfg"
	"github.com/adrenalinecoin/adnd/internal/log"
	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "adnparams.log"
	defaultLogDirname  = "logs"
)

var (
	adnHomeDir    = btcutil.AppDataDir("adnparams", false)
	defaultLogDir = filepath.Join(adnHomeDir, defaultLogDirname)
)

// errShowSubsystems is returned by loadConfig when the user asked for the
// list of logging subsystems instead of a normal run.
var errShowSubsystems = errors.New("show subsystems")

// config defines the configuration options for adnparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogDir         string `long:"logdir" description:"Directory to log output"`
	NoFileLogging  bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	Network        string `long:"network" description:"Name of the network to use {main, test, regtest, unittest}"`
	TestNet        bool   `long:"testnet" description:"Use the test network"`
	RegressionTest bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest       bool   `long:"unittest" description:"Use the unit test network"`
	ShowSeeds      bool   `long:"showseeds" description:"Display the fixed seed addresses with sampled last seen times"`
	Address        string `short:"a" long:"address" description:"Classify a base58check address or private key against the selected network"`
}

// netName resolves the network flags of cfg to a network name.  The name is
// not checked against the known networks here.  Selecting an unknown name is
// reported by the network selector.
func netName(cfg *config) (string, error) {
	// Multiple networks can't be selected simultaneously.
	var names []string
	if cfg.TestNet {
		names = append(names, chaincfg.TestNet.String())
	}
	if cfg.RegressionTest {
		names = append(names, chaincfg.RegressionNet.String())
	}
	if cfg.UnitTest {
		names = append(names, chaincfg.UnitTestNet.String())
	}
	if cfg.Network != "" {
		names = append(names, cfg.Network)
	}

	switch len(names) {
	case 0:
		return chaincfg.MainNet.String(), nil
	case 1:
		return names[0], nil
	}
	return "", errors.Errorf("the testnet, regtest, unittest and network "+
		"options can't be used together -- got %s",
		strings.Join(names, ", "))
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := log.SupportedSubsystems()
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !log.ValidLogLevel(debugLevel) {
			return errors.Errorf("the specified debug level [%v] is "+
				"invalid", debugLevel)
		}

		log.SetLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified debug level contains "+
				"an invalid subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := log.SubsystemLoggers[subsysID]; !exists {
			return errors.Errorf("the specified subsystem [%v] is "+
				"invalid -- supported subsystems %v", subsysID,
				supportedSubsystems())
		}
		if !log.ValidLogLevel(logLevel) {
			return errors.Errorf("the specified debug level [%v] is "+
				"invalid", logLevel)
		}

		log.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// isFlagsError returns whether err was produced by the command line parser.
// The parser reports those errors itself.
func isFlagsError(err error) bool {
	_, ok := err.(*flags.Error)
	return ok
}

// isHelp returns whether err is the parser's request to show the usage.
func isHelp(err error) bool {
	e, ok := err.(*flags.Error)
	return ok && e.Type == flags.ErrHelp
}

// loadConfig initializes and parses the config using the passed command line
// arguments.  It returns the parsed config along with the name of the network
// requested.
//
// The above results in adnparams functioning properly without any options
// while still allowing the user to override settings with the command line.
func loadConfig(args []string) (*config, string, error) {
	// Default config.
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, "", err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		return &cfg, "", nil
	}

	funcName := "loadConfig"
	name, err := netName(&cfg)
	if err != nil {
		parser.WriteHelp(os.Stderr)
		return nil, "", errors.Wrap(err, funcName)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return nil, "", errShowSubsystems
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		parser.WriteHelp(os.Stderr)
		return nil, "", errors.Wrap(err, funcName)
	}

	// Namespace the log directory per network and start the log rotator
	// unless file logging was disabled.
	if !cfg.NoFileLogging {
		cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), name)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return nil, "", errors.Wrap(err, funcName)
		}
	}

	return &cfg, name, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(adnHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
