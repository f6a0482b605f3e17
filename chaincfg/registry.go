// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Adrenaline developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/adrenalinecoin/adnd/powhash"
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"
)

// Registry owns the parameters of every known network.  Each network is
// constructed exactly once, by NewRegistry, and the same *Params is returned
// for it for the lifetime of the registry.
type Registry struct {
	params [numNetworks]*Params

	registeredNets    map[wire.BitcoinNet]Network
	pubKeyHashAddrIDs map[byte]struct{}
	scriptHashAddrIDs map[byte]struct{}
	hdPrivToPubKeyIDs map[[4]byte][]byte
}

// NewRegistry builds the parameters of all networks in dependency order: main,
// test (derived from main), regtest (derived from test) and unittest (derived
// from main).  The genesis block of every network is rebuilt and verified on
// the way.
//
// NewRegistry panics with an AssertError when any hard-coded constant fails
// verification.  There is no way to continue with a broken network
// definition.
func NewRegistry() *Registry {
	r := &Registry{
		registeredNets:    make(map[wire.BitcoinNet]Network),
		pubKeyHashAddrIDs: make(map[byte]struct{}),
		scriptHashAddrIDs: make(map[byte]struct{}),
		hdPrivToPubKeyIDs: make(map[[4]byte][]byte),
	}

	main := mainNetParams()
	test := testNetParams(main)
	regtest := regressionNetParams(test)
	unittest := unitTestNetParams(main)

	for _, params := range []*Params{main, test, regtest, unittest} {
		r.mustRegister(params)
	}
	return r
}

// Params returns the parameters for the given network.  ErrUnknownNet is
// returned when net does not identify a known network.
func (r *Registry) Params(net Network) (*Params, error) {
	if net < 0 || net >= numNetworks {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNet, net)
	}
	return r.params[net], nil
}

// register validates params and records them along with their address
// encoding magics.  ErrDuplicateNet is returned when the network magic is
// already used by another network.  The unit test network shares the main
// network magic since it never touches the wire, so it is exempt.
func (r *Registry) register(params *Params) error {
	if err := validate(params); err != nil {
		return err
	}
	if r.params[params.Network] != nil {
		return fmt.Errorf("%w: %v registered twice", ErrDuplicateNet,
			params.Network)
	}
	if params.Network != UnitTestNet {
		if other, ok := r.registeredNets[params.Net]; ok {
			return fmt.Errorf("%w: %v uses the magic of %v",
				ErrDuplicateNet, params.Network, other)
		}
		r.registeredNets[params.Net] = params.Network
	}

	r.params[params.Network] = params
	r.pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	r.scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	r.hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]

	log.Debugf("Registered %s network (magic %v, port %s)", params.Name,
		params.Net, params.DefaultPort)
	return nil
}

// mustRegister performs the same function as register except it panics if
// there is an error.
func (r *Registry) mustRegister(params *Params) {
	if err := r.register(params); err != nil {
		panic(AssertError("failed to register network: " + err.Error()))
	}
}

// validate checks the consistency of a network definition.
func validate(params *Params) error {
	if params.Network < 0 || params.Network >= numNetworks {
		return fmt.Errorf("%w: %v", ErrUnknownNet, params.Network)
	}

	// Single byte address versions must identify the category of an
	// address unambiguously.
	if params.PubKeyHashAddrID == params.ScriptHashAddrID ||
		params.PubKeyHashAddrID == params.PrivateKeyID ||
		params.ScriptHashAddrID == params.PrivateKeyID {

		return AssertError(fmt.Sprintf("%s address versions collide: "+
			"pubkey hash %d, script hash %d, private key %d",
			params.Name, params.PubKeyHashAddrID,
			params.ScriptHashAddrID, params.PrivateKeyID))
	}
	if params.HDPrivateKeyID == params.HDPublicKeyID {
		return AssertError(fmt.Sprintf("%s extended key versions "+
			"collide: %x", params.Name, params.HDPrivateKeyID))
	}

	if params.GenesisBlock == nil || params.GenesisHash == nil {
		return AssertError(fmt.Sprintf("%s has no genesis block",
			params.Name))
	}
	if params.Checkpoints == nil {
		return AssertError(fmt.Sprintf("%s has no checkpoint table",
			params.Name))
	}
	if hash, ok := params.Checkpoints.HashAt(0); ok &&
		!hash.IsEqual(params.GenesisHash) {

		return AssertError(fmt.Sprintf("%s checkpoint at height 0 is "+
			"%v, genesis is %v", params.Name, hash, params.GenesisHash))
	}

	if bits := blockchain.BigToCompact(params.powLimit); bits != params.PowLimitBits {
		return AssertError(fmt.Sprintf("%s proof of work limit bits "+
			"are %08x, limit encodes to %08x", params.Name,
			params.PowLimitBits, bits))
	}
	err := powhash.CheckProofOfWork(params.GenesisHash,
		params.GenesisBlock.Header.Bits, params.powLimit)
	if err != nil {
		return AssertError(fmt.Sprintf("%s genesis block: %v",
			params.Name, err))
	}

	return nil
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any known network.  This is used when decoding
// an address string into a specific address type.  It is up to the caller to
// check both this and IsScriptHashAddrID and decide whether an address is a
// pubkey hash address, script hash address, neither, or undeterminable (if
// both return true).
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any known network.
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not known, the ErrUnknownHDKeyID error will be returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return pubBytes, nil
}
