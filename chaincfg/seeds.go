// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// seedAgeWindow is both the minimum age and the width of the random age range
// given to fixed seed records.
const seedAgeWindow = 7 * 24 * time.Hour

// SeedSpec6 is a hard-coded bootstrap peer.  IP holds the address in IPv6
// form, with IPv4 addresses mapped into it.
type SeedSpec6 struct {
	IP   [16]byte
	Port uint16
}

// SeedSampler turns fixed seeds into address records.
//
// Nodes only connect to one or two seeds before learning fresher addresses
// from them, so each record is given a random last seen time between one and
// two weeks ago.
type SeedSampler struct {
	now        func() time.Time
	randInt63n func(n int64) int64
}

// NewSeedSampler returns a sampler that uses the wall clock and the default
// pseudo-random source.
func NewSeedSampler() *SeedSampler {
	return &SeedSampler{
		now:        time.Now,
		randInt63n: rand.Int63n,
	}
}

// Sample returns one address record per seed with a last seen time in the
// range (now - 2 weeks, now - 1 week].
func (s *SeedSampler) Sample(seeds []SeedSpec6) []*wire.NetAddress {
	window := int64(seedAgeWindow / time.Second)
	now := s.now().Unix()

	addrs := make([]*wire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.IP[:])

		lastSeen := time.Unix(now-s.randInt63n(window)-window, 0)
		addrs = append(addrs, wire.NewNetAddressTimestamp(lastSeen,
			wire.SFNodeNetwork, ip, seed.Port))
	}
	return addrs
}
