// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrenalinecoin/adnd/chaincfg"
	"github.com/adrenalinecoin/adnd/internal/log"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetName ensures the network flags resolve to a single network name.
func TestNetName(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config
		want    string
		wantErr bool
	}{
		{name: "default", want: "main"},
		{name: "testnet", cfg: config{TestNet: true}, want: "test"},
		{name: "regtest", cfg: config{RegressionTest: true}, want: "regtest"},
		{name: "unittest", cfg: config{UnitTest: true}, want: "unittest"},
		{name: "by name", cfg: config{Network: "regtest"}, want: "regtest"},
		{name: "unknown name", cfg: config{Network: "simnet"}, want: "simnet"},
		{
			name:    "two flags",
			cfg:     config{TestNet: true, RegressionTest: true},
			wantErr: true,
		},
		{
			name:    "flag and name",
			cfg:     config{UnitTest: true, Network: "unittest"},
			wantErr: true,
		},
	}

	for _, test := range tests {
		got, err := netName(&test.cfg)
		if test.wantErr {
			assert.Error(t, err, test.name)
			continue
		}
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, got, test.name)
	}
}

// TestParseAndSetDebugLevels ensures debug level strings are validated.
func TestParseAndSetDebugLevels(t *testing.T) {
	defer log.SetLogLevels(defaultLogLevel)

	tests := []struct {
		level string
		valid bool
	}{
		{"info", true},
		{"trace", true},
		{"CHCF=debug", true},
		{"ADNP=warn,CHCF=trace", true},
		{"loud", false},
		{"CHCF", false},
		{"CHCF=loud", false},
		{"XXXX=info", false},
		{"ADNP=info,CHCF", false},
	}
	for _, test := range tests {
		err := parseAndSetDebugLevels(test.level)
		if test.valid {
			assert.NoError(t, err, test.level)
		} else {
			assert.Error(t, err, test.level)
		}
	}
}

// TestLoadConfig ensures command line arguments are resolved to a network and
// the log directory is namespaced per network.
func TestLoadConfig(t *testing.T) {
	defer log.SetLogLevels(defaultLogLevel)

	cfg, name, err := loadConfig([]string{"--nofilelogging", "--testnet",
		"--showseeds", "-d", "CHCF=debug"})
	require.NoError(t, err)
	assert.Equal(t, "test", name)
	assert.True(t, cfg.ShowSeeds)
	assert.Equal(t, defaultLogDir, cfg.LogDir)

	logDir := t.TempDir()
	cfg, name, err = loadConfig([]string{"--logdir", logDir,
		"--network", "regtest"})
	require.NoError(t, err)
	defer func() {
		log.LogRotator.Close()
		log.LogRotator = nil
	}()
	assert.Equal(t, "regtest", name)
	assert.Equal(t, filepath.Join(logDir, "regtest"), cfg.LogDir)
	_, err = os.Stat(cfg.LogDir)
	assert.NoError(t, err)

	_, _, err = loadConfig([]string{"--nofilelogging", "--testnet",
		"--unittest"})
	assert.Error(t, err)

	_, _, err = loadConfig([]string{"--nofilelogging", "-d", "loud"})
	assert.Error(t, err)

	_, _, err = loadConfig([]string{"--nosuchflag"})
	assert.True(t, isFlagsError(err))
	assert.False(t, isHelp(err))
}

// TestSelectConfiguredNetwork ensures the resolved name selects the network
// or reports an unknown network.
func TestSelectConfiguredNetwork(t *testing.T) {
	registry := chaincfg.NewRegistry()

	s := chaincfg.NewSelector(registry)
	require.NoError(t, s.SelectByName("unittest"))
	assert.Equal(t, chaincfg.UnitTestNet, s.Active().Network)

	s = chaincfg.NewSelector(registry)
	assert.ErrorIs(t, s.SelectByName("simnet"), chaincfg.ErrUnknownNet)
}

// TestWriteParams ensures the parameter summary carries the identifying
// values of the network.
func TestWriteParams(t *testing.T) {
	registry := chaincfg.NewRegistry()
	for _, network := range []chaincfg.Network{chaincfg.MainNet,
		chaincfg.TestNet, chaincfg.RegressionNet, chaincfg.UnitTestNet} {

		params, err := registry.Params(network)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, writeParams(&buf, params))
		out := buf.String()

		start := params.MessageStart()
		for _, want := range []string{
			params.Name,
			params.GenesisHash.String(),
			params.DefaultPort,
			fmt.Sprintf("%x", start[:]),
		} {
			assert.Contains(t, out, want, params.Name)
		}
	}
}

// TestWriteSeeds ensures seed addresses are written one per line.
func TestWriteSeeds(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSeeds(&buf, nil))
	assert.Equal(t, "No fixed seeds\n", buf.String())

	ts := time.Unix(1531551600, 0)
	seeds := []*wire.NetAddress{
		wire.NewNetAddressTimestamp(ts, wire.SFNodeNetwork,
			net.ParseIP("1.2.3.4"), 23142),
		wire.NewNetAddressTimestamp(ts, wire.SFNodeNetwork,
			net.ParseIP("2001:db8::1"), 23142),
	}
	buf.Reset()
	require.NoError(t, writeSeeds(&buf, seeds))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1.2.3.4")
	assert.Contains(t, lines[1], "2001:db8::1")
	assert.Contains(t, lines[1], "23142")
}
