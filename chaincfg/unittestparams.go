// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// unitTestNetParams derives the parameters for in-process unit tests from
// the main network parameters.  The network never leaves the process, so it
// keeps the main network magic and checkpoints and has no seeds.
func unitTestNetParams(main *Params) *Params {
	p := main.clone()
	p.Name = "unittest"
	p.Network = UnitTestNet
	p.DefaultPort = "23143"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.GenesisBlock, p.GenesisHash = mustBuildGenesis("unittest",
		newGenesisSpec(1531551600, 0x1e0ffff0, 0x2e6ffb), mainGenesisHash)

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.AllowMinDifficultyBlocks = false
	p.MineBlocksOnDemand = true

	return p
}

// UnitTestParams grants write access to the thresholds and flags of the unit
// test network parameters.  It is only handed out by Selector.UnitTest while
// the unit test network is active.
//
// There is no locking.  Changes must be made before any goroutine that reads
// the parameters is started.
type UnitTestParams struct {
	params *Params
}

// Params returns the read-only view of the unit test parameters.  Changes made
// through u are visible through it.
func (u *UnitTestParams) Params() *Params {
	return u.params
}

// SetSubsidyHalvingInterval sets the subsidy halving interval.
func (u *UnitTestParams) SetSubsidyHalvingInterval(interval int32) {
	u.params.SubsidyHalvingInterval = interval
}

// SetEnforceBlockUpgradeMajority sets the block version enforcement
// threshold.
func (u *UnitTestParams) SetEnforceBlockUpgradeMajority(majority uint64) {
	u.params.EnforceBlockUpgradeMajority = majority
}

// SetRejectBlockOutdatedMajority sets the outdated block version rejection
// threshold.
func (u *UnitTestParams) SetRejectBlockOutdatedMajority(majority uint64) {
	u.params.RejectBlockOutdatedMajority = majority
}

// SetToCheckBlockUpgradeMajority sets the number of blocks examined for
// block version voting.
func (u *UnitTestParams) SetToCheckBlockUpgradeMajority(numToCheck uint64) {
	u.params.BlockUpgradeNumToCheck = numToCheck
}

// SetDefaultConsistencyChecks sets the default consistency checks flag.
func (u *UnitTestParams) SetDefaultConsistencyChecks(enabled bool) {
	u.params.DefaultConsistencyChecks = enabled
}

// SetAllowMinDifficultyBlocks sets the minimum difficulty relaxation flag.
func (u *UnitTestParams) SetAllowMinDifficultyBlocks(allow bool) {
	u.params.AllowMinDifficultyBlocks = allow
}

// SetSkipProofOfWorkCheck sets the proof of work check skipping flag.
func (u *UnitTestParams) SetSkipProofOfWorkCheck(skip bool) {
	u.params.SkipProofOfWorkCheck = skip
}
