// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSeeds returns IPv4 mapped seeds for the passed addresses.
func testSeeds(t *testing.T, addrs ...string) []SeedSpec6 {
	t.Helper()
	seeds := make([]SeedSpec6, 0, len(addrs))
	for _, addr := range addrs {
		ip := net.ParseIP(addr)
		require.NotNil(t, ip, addr)
		var seed SeedSpec6
		copy(seed.IP[:], ip.To16())
		seed.Port = 23202
		seeds = append(seeds, seed)
	}
	return seeds
}

// TestSeedSamplerWindow ensures every sampled record lands between one and
// two weeks in the past, including at both ends of the random range.
func TestSeedSamplerWindow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	seeds := testSeeds(t, "10.0.0.1", "192.168.1.7", "2001:db8::1")
	week := int64(seedAgeWindow / time.Second)

	tests := []struct {
		name string
		rand func(n int64) int64
		want time.Time
	}{
		{
			name: "youngest",
			rand: func(n int64) int64 { return 0 },
			want: now.Add(-seedAgeWindow),
		},
		{
			name: "oldest",
			rand: func(n int64) int64 { return n - 1 },
			want: time.Unix(now.Unix()-2*week+1, 0),
		},
	}

	for _, test := range tests {
		sampler := &SeedSampler{
			now:        func() time.Time { return now },
			randInt63n: test.rand,
		}
		addrs := sampler.Sample(seeds)
		require.Len(t, addrs, len(seeds), test.name)
		for i, addr := range addrs {
			assert.Equal(t, test.want.Unix(), addr.Timestamp.Unix(),
				test.name)
			assert.True(t, net.IP(seeds[i].IP[:]).Equal(addr.IP),
				test.name)
			assert.Equal(t, seeds[i].Port, addr.Port, test.name)
			assert.True(t, addr.HasService(wire.SFNodeNetwork),
				test.name)
		}
	}
}

// TestSeedSamplerRandom samples with the default source and checks the
// window bounds.
func TestSeedSamplerRandom(t *testing.T) {
	sampler := NewSeedSampler()
	seeds := testSeeds(t, "10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4",
		"10.0.0.5", "10.0.0.6", "10.0.0.7", "10.0.0.8")

	before := time.Now().Truncate(time.Second)
	addrs := sampler.Sample(seeds)
	after := time.Now()

	require.Len(t, addrs, len(seeds))
	for _, addr := range addrs {
		ts := addr.Timestamp
		assert.False(t, ts.Before(before.Add(-2*seedAgeWindow)),
			"timestamp %v too old", ts)
		assert.False(t, ts.After(after.Add(-seedAgeWindow)),
			"timestamp %v too recent", ts)
	}

	assert.Empty(t, sampler.Sample(nil))
}
