// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

const mainGenesisHash = "00000f856ef7c92d9ba1674eb4ba7896aa59b1c65b7e2e0332c78d915cfb12a4"

// mainNetFixedSeeds are the hard-coded bootstrap peers of the main network.
// The generated seed list has not been published for ADN, so the table is
// empty and peers come from the DNS seeds only.
var mainNetFixedSeeds []SeedSpec6

// mainNetParams returns the parameters for the main ADN network.  Every
// other network is derived from these.
func mainNetParams() *Params {
	genesis, genesisHash := mustBuildGenesis("main",
		newGenesisSpec(1531551600, 0x1e0ffff0, 0x2e6ffb), mainGenesisHash)

	return &Params{
		Name:        "main",
		Network:     MainNet,
		Net:         0xa7de9a80,
		DefaultPort: "23202",
		AlertPubKey: hexDecode("042677824fef70607d0e59b7514ec7245a308e1f01" +
			"8fcff0f152a001cdfcb519e0c309d23db3ce24ffecdef2011444dfafa57b" +
			"385b5f1f2cf1057d791b469e3fd1"),
		DNSSeeds: []DNSSeed{
			{"adrenalinecoin.org", "seed.adrenalinecoin.org"},
		},
		FixedSeeds: mainNetFixedSeeds,

		// Chain parameters
		GenesisBlock:           genesis,
		GenesisHash:            genesisHash,
		powLimit:               new(big.Int).Set(mainPowLimit),
		PowLimitBits:           0x1e0fffff,
		TargetTimespan:         time.Minute,
		TargetTimePerBlock:     time.Second * 25,
		MaxReorganizationDepth: 100,
		CoinbaseMaturity:       100,
		LastPOWBlock:           3300,
		SubsidyHalvingInterval: 210000,
		MaxMoney:               21000000 * btcutil.SatoshiPerBitcoin,

		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		BlockUpgradeNumToCheck:      1000,

		Checkpoints: NewCheckpointTable([]Checkpoint{
			{0, newHashFromStr(mainGenesisHash)},
		}, time.Unix(1531551600, 0), 0, 2000),

		MinerThreads:         0,
		MasternodeCountDrift: 20,
		ModifierUpdateBlock:  615800,
		PoolMaxTransactions:  3,
		SporkKey: hexDecode("0489cab48082844dbfb7f8135c5dcd8a727eef27e0cbe2" +
			"9124057e3a7b5919601604e1ac4043e0447b12759e775a3a52ef078556edbd" +
			"6e15361e5d05c74fa9a56a"),
		CoinMixingPoolDummyAddress: "ANCg35tRqzzQZy36zbrDywHm5raS5xfr6j",
		StartMasternodePayments:    time.Unix(1531552400, 0),

		RequireRPCPassword:            true,
		MiningRequiresPeers:           true,
		AllowMinDifficultyBlocks:      false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          true,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,

		// Address encoding magics
		PubKeyHashAddrID: 23,  // starts with A
		ScriptHashAddrID: 18,  // starts with 8
		PrivateKeyID:     212,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x02, 0x21, 0x3b, 0x5e},
		HDPublicKeyID:  [4]byte{0x02, 0x4d, 0x26, 0x39},

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 0x77,
	}
}
