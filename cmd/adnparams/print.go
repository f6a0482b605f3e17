// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/adrenalinecoin/adnd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// writeParams writes a human-readable summary of params to w.
func writeParams(w io.Writer, params *chaincfg.Params) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	row := func(name string, format string, args ...interface{}) {
		fmt.Fprintf(tw, "%s:\t%s\n", name, fmt.Sprintf(format, args...))
	}

	start := params.MessageStart()
	row("Network", "%s", params.Name)
	row("Message start", "%x", start[:])
	row("Default port", "%s", params.DefaultPort)
	row("Genesis hash", "%v", params.GenesisHash)
	row("Genesis merkle root", "%v", params.GenesisBlock.Header.MerkleRoot)
	row("Genesis time", "%v", params.GenesisBlock.Header.Timestamp.UTC())
	row("Proof of work limit", "%08x", params.PowLimitBits)
	row("Target timespan", "%v", params.TargetTimespan)
	row("Target time per block", "%v", params.TargetTimePerBlock)
	row("Subsidy halving interval", "%d", params.SubsidyHalvingInterval)
	row("Coinbase maturity", "%d", params.CoinbaseMaturity)
	row("Last proof of work block", "%d", params.LastPOWBlock)
	row("Max money", "%v", params.MaxMoney)
	row("Upgrade majority", "%d/%d/%d", params.EnforceBlockUpgradeMajority,
		params.RejectBlockOutdatedMajority, params.BlockUpgradeNumToCheck)
	row("Address versions", "pubkey hash %d, script hash %d, private key %d",
		params.PubKeyHashAddrID, params.ScriptHashAddrID,
		params.PrivateKeyID)
	row("Extended key versions", "private %x, public %x",
		params.HDPrivateKeyID[:], params.HDPublicKeyID[:])
	row("BIP44 coin type", "%d", params.HDCoinType)
	row("Masternode payments start", "%v",
		params.StartMasternodePayments.UTC())

	for _, seed := range params.DNSSeeds {
		row("DNS seed", "%v", seed)
	}
	for _, cp := range params.Checkpoints.Checkpoints() {
		row("Checkpoint", "%d %v", cp.Height, cp.Hash)
	}
	row("Estimated transactions", "%.0f",
		params.Checkpoints.EstimatedTransactions(time.Now()))

	return tw.Flush()
}

// writeSeeds writes one line per seed address to w.
func writeSeeds(w io.Writer, seeds []*wire.NetAddress) error {
	if len(seeds) == 0 {
		_, err := fmt.Fprintln(w, "No fixed seeds")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	for _, na := range seeds {
		fmt.Fprintf(tw, "%v\t%d\t%v\n", na.IP, na.Port,
			na.Timestamp.UTC())
	}
	return tw.Flush()
}
