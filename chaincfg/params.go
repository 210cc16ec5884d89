// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkg/errors"

	"github.com/goldcrest-btc/goldcrestd/util/network"
	"github.com/goldcrest-btc/goldcrestd/wire"
)

// Params defines a bitcoin network by its parameters. These parameters may be
// used by applications to differentiate networks as well as addresses and keys
// for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []string
}

// NormalizeAddress returns the passed address with the network's default
// peer-to-peer port appended when addr does not already carry a port.
func (p *Params) NormalizeAddress(addr string) (string, error) {
	return network.NormalizeAddress(addr, p.DefaultPort)
}

// MainNetParams defines the network parameters for the main bitcoin network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.MainNet,
	DefaultPort: "8333",
	DNSSeeds: []string{
		"seed.bitcoin.sipa.be",
		"dnsseed.bluematt.me",
		"seed.bitcoinstats.com",
		"seed.bitnodes.io",
	},
}

// RegressionNetParams defines the network parameters for the regression test
// bitcoin network. Not to be confused with the test network (version 3),
// this network is sometimes simply called "testnet".
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         wire.RegTest,
	DefaultPort: "18444",
	DNSSeeds:    []string{},
}

// TestNet3Params defines the network parameters for the test bitcoin network
// (version 3). Not to be confused with the regression test network, this
// network is sometimes simply called "testnet".
var TestNet3Params = Params{
	Name:        "testnet3",
	Net:         wire.TestNet3,
	DefaultPort: "18333",
	DNSSeeds: []string{
		"testnet-seed.bitcoin.jonasschnelli.ch",
		"seed.tbtc.petertodd.org",
	},
}

// SimNetParams defines the network parameters for the simulation test bitcoin
// network. This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing. The functionality is intended to differ in that the only nodes
// which are specifically specified are used to create the network rather than
// following normal discovery rules. This is important as otherwise it would
// just turn into another public testnet.
var SimNetParams = Params{
	Name:        "simnet",
	Net:         wire.SimNet,
	DefaultPort: "18555",
	DNSSeeds:    []string{}, // NOTE: There must NOT be any seeds.
}

// ErrDuplicateNet describes an error where the parameters for a bitcoin
// network could not be set due to the network already being a standard
// network or previously-registered via this package.
var ErrDuplicateNet = errors.New("duplicate bitcoin network")

var registeredNets = make(map[wire.BitcoinNet]struct{})

// Register registers the network parameters for a bitcoin network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsRegistered reports whether the network associated with the given magic
// has been registered, either as a default network or via Register.
func IsRegistered(net wire.BitcoinNet) bool {
	_, ok := registeredNets[net]
	return ok
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
	mustRegister(&RegressionNetParams)
	mustRegister(&SimNetParams)
}
