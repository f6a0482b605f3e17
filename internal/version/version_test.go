// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "testing"

func TestString(t *testing.T) {
	defer func(pre, build string) {
		PreRelease, BuildMetadata = pre, build
	}(PreRelease, BuildMetadata)

	tests := []struct {
		pre, build string
		want       string
	}{
		{"", "", "0.1.0"},
		{"beta", "", "0.1.0-beta"},
		{"beta", "abc123", "0.1.0-beta+abc123"},
		{"be.ta!", "ab c", "0.1.0-beta+abc"},
		{"", "dev", "0.1.0+dev"},
	}
	for _, test := range tests {
		PreRelease, BuildMetadata = test.pre, test.build
		if got := String(); got != test.want {
			t.Errorf("String(%q, %q) = %q, want %q", test.pre,
				test.build, got, test.want)
		}
	}
}
