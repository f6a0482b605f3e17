// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

const regressionNetGenesisHash = "596f598bb5c41687a555da6bb25c41bb4bca96fc16be8f622078467c75831cb5"

// regressionNetParams derives the parameters for the regression test network
// from the test network parameters.  Blocks are trivially easy to mine and
// the network never touches the public seeds.
func regressionNetParams(test *Params) *Params {
	p := test.clone()
	p.Name = "regtest"
	p.Network = RegressionNet
	p.Net = 0xac5ecaa1
	p.DefaultPort = "23142"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.GenesisBlock, p.GenesisHash = mustBuildGenesis("regtest",
		newGenesisSpec(1531551602, 0x207fffff, 0x3039), regressionNetGenesisHash)
	p.powLimit = new(big.Int).Set(regressionPowLimit)
	p.PowLimitBits = 0x207fffff
	p.SubsidyHalvingInterval = 150
	p.MinerThreads = 1

	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.BlockUpgradeNumToCheck = 1000

	p.Checkpoints = NewCheckpointTable([]Checkpoint{
		{0, newHashFromStr(regressionNetGenesisHash)},
	}, time.Unix(1531551602, 0), 0, 100)

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	return p
}
