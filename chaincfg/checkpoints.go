// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointTable holds the checkpoints of a network ordered from oldest to
// newest along with the data used to estimate sync progress past the last
// one.
type CheckpointTable struct {
	checkpoints []Checkpoint
	byHeight    map[int32]*chainhash.Hash

	lastTime   time.Time
	totalTxns  uint64
	txnsPerDay float64
}

// NewCheckpointTable returns a table for the given checkpoints.  lastTime is
// the timestamp of the last checkpoint block, totalTxns the number of
// transactions up to and including it, and txnsPerDay the expected number of
// transactions per day after it.
//
// Checkpoint tables are hard-coded, so malformed input panics: heights must be
// strictly increasing, hashes must be set and txnsPerDay must be positive.
func NewCheckpointTable(checkpoints []Checkpoint, lastTime time.Time,
	totalTxns uint64, txnsPerDay float64) *CheckpointTable {

	if txnsPerDay <= 0 {
		panic(AssertError(fmt.Sprintf("checkpoint transactions per day "+
			"must be positive, got %v", txnsPerDay)))
	}

	byHeight := make(map[int32]*chainhash.Hash, len(checkpoints))
	for i, checkpoint := range checkpoints {
		if checkpoint.Hash == nil {
			panic(AssertError(fmt.Sprintf("checkpoint at height %d "+
				"has no hash", checkpoint.Height)))
		}
		if i > 0 && checkpoint.Height <= checkpoints[i-1].Height {
			panic(AssertError(fmt.Sprintf("checkpoint heights are "+
				"not strictly increasing: %d follows %d",
				checkpoint.Height, checkpoints[i-1].Height)))
		}
		byHeight[checkpoint.Height] = checkpoint.Hash
	}

	return &CheckpointTable{
		checkpoints: append([]Checkpoint(nil), checkpoints...),
		byHeight:    byHeight,
		lastTime:    lastTime,
		totalTxns:   totalTxns,
		txnsPerDay:  txnsPerDay,
	}
}

// HashAt returns the checkpointed hash at the given height.  The second return
// value is false when there is no checkpoint at that height.
func (t *CheckpointTable) HashAt(height int32) (*chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	return hash, ok
}

// Checkpoints returns a copy of the checkpoints ordered from oldest to newest.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	return append([]Checkpoint(nil), t.checkpoints...)
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the table
// is empty.
func (t *CheckpointTable) LatestCheckpoint() *Checkpoint {
	if len(t.checkpoints) == 0 {
		return nil
	}
	checkpoint := t.checkpoints[len(t.checkpoints)-1]
	return &checkpoint
}

// Verify returns false only when a checkpoint exists at height and its hash
// differs from the passed one.
func (t *CheckpointTable) Verify(height int32, hash *chainhash.Hash) bool {
	want, ok := t.byHeight[height]
	if !ok {
		return true
	}
	return want.IsEqual(hash)
}

// IsBelowCheckpoint returns whether height is at or below the latest
// checkpoint, in which case the block there may not be reorganized away.
func (t *CheckpointTable) IsBelowCheckpoint(height int32) bool {
	latest := t.LatestCheckpoint()
	return latest != nil && height <= latest.Height
}

// LastCheckpointTime returns the timestamp of the last checkpoint block.
func (t *CheckpointTable) LastCheckpointTime() time.Time {
	return t.lastTime
}

// TotalTransactions returns the number of transactions between the genesis
// block and the last checkpoint.
func (t *CheckpointTable) TotalTransactions() uint64 {
	return t.totalTxns
}

// TransactionsPerDay returns the estimated number of transactions per day
// after the last checkpoint.
func (t *CheckpointTable) TransactionsPerDay() float64 {
	return t.txnsPerDay
}

// EstimatedTransactions projects the total number of chain transactions at
// the passed time from the checkpoint data.
func (t *CheckpointTable) EstimatedTransactions(now time.Time) float64 {
	elapsed := now.Sub(t.lastTime)
	if elapsed < 0 {
		elapsed = 0
	}
	days := elapsed.Hours() / 24
	return float64(t.totalTxns) + days*t.txnsPerDay
}
