// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package powhash provides the hash functions that identify ADN blocks.
//
// ADN block headers are serialized exactly like bitcoin headers, but the
// block identity (and therefore the proof of work) is the first 256 bits of
// the BLAKE-512 digest of the 80-byte header rather than double SHA-256.
// Transaction hashes and merkle trees keep the double SHA-256 construction.
package powhash

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/bitbandi/go-x11/blake"
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Sum returns the ADN proof-of-work hash of b.
func Sum(b []byte) chainhash.Hash {
	var digest [blake.HashSize]byte
	h := blake.New()
	h.Write(b)
	// Close only fails when the destination is shorter than HashSize.
	_ = h.Close(digest[:], 0, 0)

	var hash chainhash.Hash
	copy(hash[:], digest[:chainhash.HashSize])
	return hash
}

// BlockHash computes the block identifier hash for the given block header.
func BlockHash(header *wire.BlockHeader) chainhash.Hash {
	// Encode the header and hash everything prior to the number of
	// transactions.  Ignore the error returns since there is no way the
	// encode could fail except being out of memory which would cause a
	// run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, wire.MaxBlockHeaderPayload))
	_ = header.Serialize(buf)

	return Sum(buf.Bytes())
}

// MerkleRoot returns the root of the merkle tree built from the passed
// transactions.  The zero hash is returned for an empty slice.
func MerkleRoot(txns []*wire.MsgTx) chainhash.Hash {
	if len(txns) == 0 {
		return chainhash.Hash{}
	}

	utilTxns := make([]*btcutil.Tx, 0, len(txns))
	for _, tx := range txns {
		utilTxns = append(utilTxns, btcutil.NewTx(tx))
	}
	merkles := blockchain.BuildMerkleTreeStore(utilTxns, false)
	return *merkles[len(merkles)-1]
}

// CheckProofOfWork ensures the compact target difficulty bits are in the
// range (0, powLimit] and that hash does not exceed the target they encode.
// Violations are reported as blockchain.RuleError values so callers can
// inspect the error code.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, powLimit *big.Int) error {
	// The target difficulty must be larger than zero.
	target := blockchain.CompactToBig(bits)
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too low",
			target)
		return blockchain.RuleError{
			ErrorCode:   blockchain.ErrUnexpectedDifficulty,
			Description: str,
		}
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is "+
			"higher than max of %064x", target, powLimit)
		return blockchain.RuleError{
			ErrorCode:   blockchain.ErrUnexpectedDifficulty,
			Description: str,
		}
	}

	hashNum := blockchain.HashToBig(hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than "+
			"expected max of %064x", hashNum, target)
		return blockchain.RuleError{
			ErrorCode:   blockchain.ErrHighHash,
			Description: str,
		}
	}

	return nil
}
