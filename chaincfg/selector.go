// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// Selector tracks which network the process runs on.  It starts out with no
// network selected.  Once a network is selected it stays selected, except that
// the unit test network may be swapped for another one so test harnesses can
// switch networks between cases.
//
// A Selector is meant to be set up once during startup, before any goroutine
// reads the active parameters, and then handed to the subsystems that need
// them.  It is not safe for concurrent use with Select.
type Selector struct {
	registry *Registry
	active   *Params
}

// NewSelector returns a selector for the networks owned by registry with no
// network selected.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select makes net the active network.
//
// ErrUnknownNet is returned, and the selection left untouched, when net does
// not identify a known network.  Selecting the active network again is a
// no-op.  ErrAlreadySelected is returned when a different network is already
// active and it is not the unit test network.
func (s *Selector) Select(net Network) error {
	params, err := s.registry.Params(net)
	if err != nil {
		return err
	}

	if s.active != nil {
		if s.active == params {
			return nil
		}
		if s.active.Network != UnitTestNet {
			return fmt.Errorf("%w: %v is active, refusing to switch "+
				"to %v", ErrAlreadySelected, s.active.Network, net)
		}
	}

	s.active = params
	log.Infof("Active network: %s", params.Name)
	return nil
}

// SelectByName selects the network with the given name.  See Select for the
// error semantics.
func (s *Selector) SelectByName(name string) error {
	net, ok := NetworkFromName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNet, name)
	}
	return s.Select(net)
}

// Selected returns the active network.  The second return value is false when
// no network has been selected.
func (s *Selector) Selected() (Network, bool) {
	if s.active == nil {
		return numNetworks, false
	}
	return s.active.Network, true
}

// Active returns the parameters of the active network.
//
// Reading the parameters before selecting a network is a programming error,
// so Active panics with an AssertError in that case.
func (s *Selector) Active() *Params {
	if s.active == nil {
		panic(AssertError("network parameters requested before a " +
			"network was selected"))
	}
	return s.active
}

// UnitTest returns write access to the unit test network parameters.  It
// panics with an AssertError unless the unit test network is active.
func (s *Selector) UnitTest() *UnitTestParams {
	params := s.Active()
	if params.Network != UnitTestNet {
		panic(AssertError(fmt.Sprintf("unit test parameters requested "+
			"while the %s network is active", params.Name)))
	}
	return &UnitTestParams{params: params}
}
