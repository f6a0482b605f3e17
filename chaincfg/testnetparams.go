// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

const testNetGenesisHash = "000005ef42acb96f28f577871faa04a6c5039e71ad6c71e60ea560c5d729c1a8"

// testNetFixedSeeds are the hard-coded bootstrap peers of the test network.
// Like the main network table it is empty until a generated seed list is
// published.
var testNetFixedSeeds []SeedSpec6

// testNetParams derives the parameters for the public test network from the
// main network parameters.
func testNetParams(main *Params) *Params {
	p := main.clone()
	p.Name = "test"
	p.Network = TestNet
	p.Net = 0xbe637941
	p.DefaultPort = "23152"
	p.AlertPubKey = hexDecode("043d15ba6c3795f554421aebc45ea6fc83e3c4802b50" +
		"59b04f2639899e88bd2aa2860ab277abab56ffc45f9119b83296914dd0ed40070" +
		"82b6b0e026eea91a54923")
	p.DNSSeeds = []DNSSeed{
		{"adrenalinecoin.org", "testnet.seed.adrenalinecoin.org"},
	}
	p.FixedSeeds = testNetFixedSeeds

	p.GenesisBlock, p.GenesisHash = mustBuildGenesis("test",
		newGenesisSpec(1531551601, 0x1e0ffff0, 0x612825), testNetGenesisHash)
	p.CoinbaseMaturity = 15
	p.LastPOWBlock = 200
	p.MaxMoney = 43199500 * btcutil.SatoshiPerBitcoin

	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.BlockUpgradeNumToCheck = 100

	p.Checkpoints = NewCheckpointTable([]Checkpoint{
		{0, newHashFromStr(testNetGenesisHash)},
	}, time.Unix(1531551601, 0), 0, 250)

	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = 51197
	p.PoolMaxTransactions = 2
	p.SporkKey = hexDecode("04c12b34755b57a4a817fa510368865856c02321365e0219" +
		"4a62033be110a4a3611d5310cff2412ba52a24641af745e73527f53f3ab232f46a" +
		"f4358363fa821850")
	p.CoinMixingPoolDummyAddress = "y57cqfGRkekRyDRNeJiLtYVEbvhXrNbmox"
	p.StartMasternodePayments = time.Unix(1531552401, 0)

	p.AllowMinDifficultyBlocks = true
	p.RequireStandard = false
	p.TestnetToBeDeprecatedFieldRPC = true

	// Address encoding magics
	p.PubKeyHashAddrID = 83 // starts with a
	p.ScriptHashAddrID = 12 // starts with 5 or 6
	p.PrivateKeyID = 239    // starts with 9 or c

	// BIP32 hierarchical deterministic extended key magics
	p.HDPrivateKeyID = [4]byte{0x3a, 0x81, 0x59, 0x38}
	p.HDPublicKeyID = [4]byte{0x3a, 0x84, 0x65, 0xa2}

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	p.HDCoinType = 1

	return p
}
