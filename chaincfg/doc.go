// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters for the ADN networks.

In addition to the main ADN network, which is intended for the transfer
of monetary value, there also exists a public test network, a regression test
network that is trivially easy to mine and an in-process unit test network.
The public networks are incompatible with each other (each has a different
genesis block) and software should handle errors where input intended for
one network is used on an application instance running on a different
network.  The unit test network reuses the main network genesis block and
never leaves the process.

A Registry builds the parameters of all four networks once, verifying every
genesis block against its hard-coded hash, and a Selector records which of
them the process runs on:

	registry := chaincfg.NewRegistry()
	selector := chaincfg.NewSelector(registry)
	if err := selector.SelectByName(cfg.Network); err != nil {
		// Report the usage error.
	}
	params := selector.Active()

The active parameters are then passed down to every subsystem and read
without locking.  Test fixtures running on the unit test network may adjust
a few thresholds and flags through Selector.UnitTest before starting any
goroutine that reads them.
*/
package chaincfg
