// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/adrenalinecoin/adnd/powhash"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisCoinbaseMessage is the message embedded in the coinbase
	// signature script of every ADN genesis block.
	genesisCoinbaseMessage = "More coins, more adrenaline 2018"

	// genesisCoinbaseBits is the legacy difficulty bits value pushed at
	// the start of the genesis coinbase script.
	genesisCoinbaseBits = 486604799

	// genesisReward is the value of the single genesis coinbase output.
	genesisReward = 10 * btcutil.SatoshiPerBitcoin

	// genesisMerkleRoot is the hash of the shared genesis coinbase.
	genesisMerkleRoot = "808dbfb394c5c6fdb53d0303b88c1a4d1ca0487180cce9286576235616e45a14"
)

// genesisOutputScript pays the genesis reward to the founders' key.
var genesisOutputScript = PayToPubKeyScript(hexDecode("04f1b9feec42de0a51167f" +
	"17e9dbe9fd1fdeb47e50f20f2f95b1c3670f51484743f06c7250f9599d3e4121502f" +
	"cfcf4ac67e70599425bb229c9abbbd1a6d572aa4"))

// GenesisSpec holds the scalar inputs a genesis block is assembled from.
type GenesisSpec struct {
	Version         int32
	Timestamp       time.Time
	Bits            uint32
	Nonce           uint32
	CoinbaseMessage string
	OutputScript    []byte
	Reward          btcutil.Amount
}

// newGenesisSpec returns the spec shared by all ADN networks with the given
// header fields.
func newGenesisSpec(timestamp int64, bits, nonce uint32) *GenesisSpec {
	return &GenesisSpec{
		Version:         1,
		Timestamp:       time.Unix(timestamp, 0),
		Bits:            bits,
		Nonce:           nonce,
		CoinbaseMessage: genesisCoinbaseMessage,
		OutputScript:    genesisOutputScript,
		Reward:          btcutil.Amount(genesisReward),
	}
}

// GenesisCoinbaseScript returns the signature script of a genesis coinbase
// carrying message.
func GenesisCoinbaseScript(message string) []byte {
	// The extra nonce 4 is an explicit one byte push.  The builder would
	// turn data pushes of small integers into OP_4, which changes the
	// coinbase hash.
	script, err := txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, 4}).
		AddData([]byte(message)).
		Script()
	if err != nil {
		panic(AssertError(fmt.Sprintf("genesis coinbase script: %v", err)))
	}
	return script
}

// PayToPubKeyScript returns a script that pays to the serialized public key.
func PayToPubKeyScript(pubKey []byte) []byte {
	script, err := txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(AssertError(fmt.Sprintf("pay to pubkey script: %v", err)))
	}
	return script
}

// BuildGenesisBlock assembles a single transaction block whose coinbase
// embeds the spec's message and pays its reward to the spec's output script.
func BuildGenesisBlock(spec *GenesisSpec) *wire.MsgBlock {
	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: GenesisCoinbaseScript(spec.CoinbaseMessage),
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(wire.NewTxOut(int64(spec.Reward), spec.OutputScript))

	txns := []*wire.MsgTx{coinbase}
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    spec.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: powhash.MerkleRoot(txns),
			Timestamp:  spec.Timestamp,
			Bits:       spec.Bits,
			Nonce:      spec.Nonce,
		},
		Transactions: txns,
	}
}

// mustBuildGenesis builds the genesis block described by spec and verifies its
// merkle root and hash against the hard-coded values.  A mismatch can only
// come from wrong constants, so it panics.
func mustBuildGenesis(name string, spec *GenesisSpec, hash string) (*wire.MsgBlock, *chainhash.Hash) {
	block := BuildGenesisBlock(spec)

	wantMerkle := newHashFromStr(genesisMerkleRoot)
	if !block.Header.MerkleRoot.IsEqual(wantMerkle) {
		panic(AssertError(fmt.Sprintf("%s genesis merkle root is %v, "+
			"expected %v", name, block.Header.MerkleRoot, wantMerkle)))
	}

	wantHash := newHashFromStr(hash)
	gotHash := powhash.BlockHash(&block.Header)
	if !gotHash.IsEqual(wantHash) {
		panic(AssertError(fmt.Sprintf("%s genesis hash is %v, expected %v",
			name, gotHash, wantHash)))
	}

	log.Debugf("Verified %s genesis block %v", name, gotHash)
	return block, &gotHash
}
