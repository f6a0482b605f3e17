// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// adnparams prints the consensus and policy parameters of an ADN network.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/adrenalinecoin/adnd/chaincfg"
	"github.com/adrenalinecoin/adnd/internal/log"
	"github.com/adrenalinecoin/adnd/internal/version"
	"github.com/pkg/errors"
)

var adnpLog = log.AdnpLog

// adnparamsMain is the real main function for adnparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func adnparamsMain(args []string) error {
	cfg, name, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer func() {
		if log.LogRotator != nil {
			log.LogRotator.Close()
		}
	}()

	if cfg.ShowVersion {
		fmt.Printf("adnparams version %s (Go version %s %s/%s)\n",
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		return nil
	}

	adnpLog.Infof("Version %s", version.String())

	selector := chaincfg.NewSelector(chaincfg.NewRegistry())
	if err := selector.SelectByName(name); err != nil {
		return errors.Wrap(err, "unable to select network")
	}
	params := selector.Active()

	if err := writeParams(os.Stdout, params); err != nil {
		return errors.Wrap(err, "unable to write parameters")
	}

	if cfg.ShowSeeds {
		seeds := params.SeedAddresses(chaincfg.NewSeedSampler())
		adnpLog.Debugf("Sampled %d fixed seeds", len(seeds))
		if err := writeSeeds(os.Stdout, seeds); err != nil {
			return errors.Wrap(err, "unable to write seeds")
		}
	}

	if cfg.Address != "" {
		category, err := params.DecodeAddressCategory(cfg.Address)
		if err != nil {
			return errors.Wrapf(err, "unable to classify %q", cfg.Address)
		}
		fmt.Printf("%s: %s on the %s network\n", cfg.Address, category,
			params.Name)
	}

	return nil
}

func main() {
	if err := adnparamsMain(os.Args[1:]); err != nil {
		if isHelp(err) || err == errShowSubsystems {
			return
		}
		if !isFlagsError(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
