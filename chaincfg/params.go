// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value an ADN block can
	// have for the main network.  It is the value 2^236 - 1, which puts
	// the starting difficulty at 1 / 2^12.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value an ADN block
	// can have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be registered because the network magic is already
	// in use by another registered network.
	ErrDuplicateNet = errors.New("duplicate ADN network")

	// ErrUnknownNet describes an error where a network identity or name
	// does not refer to any of the known networks.
	ErrUnknownNet = errors.New("unknown ADN network")

	// ErrAlreadySelected describes an error where a network selection
	// would replace an already active non unit test network.
	ErrAlreadySelected = errors.New("a different network is already selected")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrInvalidAddress describes an error where an address string is not
	// a valid base58check encoding.
	ErrInvalidAddress = errors.New("invalid address encoding")
)

// AssertError identifies an error that indicates an internal code consistency
// issue, such as a hard-coded constant that does not reproduce its expected
// value, and should be treated as a critical and unrecoverable error.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// Network identifies one of the logical ADN networks.
type Network int

// Constants used to indicate the known networks.
const (
	MainNet Network = iota
	TestNet
	RegressionNet
	UnitTestNet

	// numNetworks is the number of known networks.  It must be the last
	// item in the list.
	numNetworks
)

// networkNames maps each known network to the name used to refer to it on
// the command line and in logs.
var networkNames = [numNetworks]string{
	MainNet:       "main",
	TestNet:       "test",
	RegressionNet: "regtest",
	UnitTestNet:   "unittest",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if n < 0 || n >= numNetworks {
		return fmt.Sprintf("Unknown Network (%d)", int(n))
	}
	return networkNames[n]
}

// NetworkFromName returns the network identified by name.  The second return
// value is false when the name does not match any known network.
func NetworkFromName(name string) (Network, bool) {
	for i, networkName := range networkNames {
		if name == networkName {
			return Network(i), true
		}
	}
	return numNetworks, false
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a label for the operator of the seeder.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// AddressCategory describes what kind of payload a base58check version byte
// introduces.
type AddressCategory int

// Constants used to indicate the address categories.
const (
	UnknownAddr AddressCategory = iota
	PubKeyHashAddr
	ScriptHashAddr
	PrivateKey
)

var addressCategoryStrings = map[AddressCategory]string{
	UnknownAddr:    "unknown",
	PubKeyHashAddr: "pubkeyhash",
	ScriptHashAddr: "scripthash",
	PrivateKey:     "privatekey",
}

// String returns the AddressCategory in human-readable form.
func (c AddressCategory) String() string {
	if s, ok := addressCategoryStrings[c]; ok {
		return s
	}
	return fmt.Sprintf("Unknown AddressCategory (%d)", int(c))
}

// Params defines an ADN network by its parameters.  These parameters may be
// used by ADN applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// Values handed out by a Registry are shared and must be treated as read-only.
// The only sanctioned mutation path is UnitTestParams.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network is the logical identity of the network.
	Network Network

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// AlertPubKey is the serialized key that signs network alerts.  It is
	// carried as opaque bytes.
	AlertPubKey []byte

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the hard-coded bootstrap peers.  They are turned into
	// address records with SeedAddresses.
	FixedSeeds []SeedSpec6

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// powLimit defines the highest allowed proof of work value for a block
	// as a uint256.  It is only handed out as a copy, see PowLimit.
	powLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// MaxReorganizationDepth is the deepest reorganization the node will
	// accept.
	MaxReorganizationDepth int32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint16

	// LastPOWBlock is the height of the last proof-of-work block.
	LastPOWBlock int32

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	// MaxMoney is the money supply cap.
	MaxMoney btcutil.Amount

	// These fields define the block version voting thresholds.  A new
	// block version is enforced once EnforceBlockUpgradeMajority of the
	// last BlockUpgradeNumToCheck blocks carry it, and blocks with an old
	// version are rejected once RejectBlockOutdatedMajority do.
	EnforceBlockUpgradeMajority uint64
	RejectBlockOutdatedMajority uint64
	BlockUpgradeNumToCheck      uint64

	// Checkpoints holds the known good blocks of the chain.
	Checkpoints *CheckpointTable

	// MinerThreads is the default number of mining threads.  Zero means
	// one per core.
	MinerThreads int

	// Masternode and coin mixing parameters.
	MasternodeCountDrift       int
	ModifierUpdateBlock        int32
	PoolMaxTransactions        int
	SporkKey                   []byte
	CoinMixingPoolDummyAddress string
	StartMasternodePayments    time.Time

	// Behavior flags.
	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32
}

// MessageStart returns the four bytes that begin every wire message on the
// network.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// PowLimit returns a copy of the highest allowed proof of work value for a
// block.
func (p *Params) PowLimit() *big.Int {
	return new(big.Int).Set(p.powLimit)
}

// HDCoinTypeKey returns the hardened BIP44 coin type child index.
func (p *Params) HDCoinTypeKey() uint32 {
	return hdkeychain.HardenedKeyStart + p.HDCoinType
}

// AddressCategory returns the category introduced by the given base58check
// version byte on this network.
func (p *Params) AddressCategory(version byte) AddressCategory {
	switch version {
	case p.PubKeyHashAddrID:
		return PubKeyHashAddr
	case p.ScriptHashAddrID:
		return ScriptHashAddr
	case p.PrivateKeyID:
		return PrivateKey
	}
	return UnknownAddr
}

// DecodeAddressCategory decodes the base58check string addr and returns the
// category its version byte introduces on this network.
func (p *Params) DecodeAddressCategory(addr string) (AddressCategory, error) {
	_, version, err := base58.CheckDecode(addr)
	if err != nil {
		return UnknownAddr, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return p.AddressCategory(version), nil
}

// SeedAddresses converts the fixed seeds of the network into address records
// using the passed sampler.
func (p *Params) SeedAddresses(sampler *SeedSampler) []*wire.NetAddress {
	return sampler.Sample(p.FixedSeeds)
}

// clone returns a copy of the parameters that shares no mutable state with
// p, apart from the genesis block and checkpoint table, which are never
// modified after construction.
func (p *Params) clone() *Params {
	c := *p
	c.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	c.SporkKey = append([]byte(nil), p.SporkKey...)
	c.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	c.FixedSeeds = append([]SeedSpec6(nil), p.FixedSeeds...)
	c.powLimit = new(big.Int).Set(p.powLimit)
	return &c
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(AssertError(fmt.Sprintf("invalid hard-coded hash %q: %v",
			hexStr, err)))
	}
	return hash
}

// hexDecode decodes a hard-coded hex string and panics on failure.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(AssertError(fmt.Sprintf("invalid hard-coded hex %q: %v",
			hexStr, err)))
	}
	return b
}
