// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/goldcrest-btc/goldcrestd/wire"
)

// TestMustRegisterPanic ensures the mustRegister function panics when used to
// register an invalid network.
func TestMustRegisterPanic(t *testing.T) {
	t.Parallel()

	// Setup a defer to catch the expected panic to ensure it actually
	// paniced.
	defer func() {
		if err := recover(); err == nil {
			t.Error("mustRegister did not panic as expected")
		}
	}()

	// Intentionally try to register duplicate params to force a panic.
	mustRegister(&MainNetParams)
}

// TestRegisterDuplicate ensures Register returns ErrDuplicateNet when a
// default network is registered a second time.
func TestRegisterDuplicate(t *testing.T) {
	err := Register(&SimNetParams)
	if !errors.Is(err, ErrDuplicateNet) {
		t.Errorf("Register: wrong error - got %v, want %v",
			err, ErrDuplicateNet)
	}
}

// TestDefaultNetworks ensures the default network parameters carry the
// expected magic values and that each is registered.
func TestDefaultNetworks(t *testing.T) {
	tests := []struct {
		params *Params
		name   string
		net    wire.BitcoinNet
		magic  uint32
		port   string
	}{
		{&MainNetParams, "mainnet", wire.MainNet, 0xd9b4bef9, "8333"},
		{&TestNet3Params, "testnet3", wire.TestNet3, 0x0709110b, "18333"},
		{&RegressionNetParams, "regtest", wire.RegTest, 0xdab5bffa, "18444"},
		{&SimNetParams, "simnet", wire.SimNet, 0x12141c16, "18555"},
	}

	for _, test := range tests {
		if test.params.Name != test.name {
			t.Errorf("%s: wrong name - got %v, want %v",
				test.name, test.params.Name, test.name)
		}
		if test.params.Net != test.net {
			t.Errorf("%s: wrong net - got %v, want %v",
				test.name, test.params.Net, test.net)
		}
		if uint32(test.params.Net) != test.magic {
			t.Errorf("%s: wrong magic - got 0x%08x, want 0x%08x",
				test.name, uint32(test.params.Net), test.magic)
		}
		if test.params.DefaultPort != test.port {
			t.Errorf("%s: wrong port - got %v, want %v",
				test.name, test.params.DefaultPort, test.port)
		}
		if !IsRegistered(test.params.Net) {
			t.Errorf("%s: network is not registered", test.name)
		}
	}

	// Simnet must not carry DNS seeds.
	if len(SimNetParams.DNSSeeds) != 0 {
		t.Errorf("simnet has DNS seeds: %v", SimNetParams.DNSSeeds)
	}
}

// TestNormalizeAddress ensures the default port is only appended when the
// address does not already have one.
func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"127.0.0.1", "127.0.0.1:8333"},
		{"127.0.0.1:9333", "127.0.0.1:9333"},
		{"node.example.com", "node.example.com:8333"},
	}

	for _, test := range tests {
		got, err := MainNetParams.NormalizeAddress(test.in)
		if err != nil {
			t.Errorf("NormalizeAddress(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("NormalizeAddress(%q): got %v, want %v",
				test.in, got, test.want)
		}
	}
}
