// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethereum_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/complex-gh/ethwallet/ethereum"
	"github.com/matryer/is"
)

// BIP-32 test vector 1.
const (
	vector1Xprv    = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	vector1Xpub    = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	vector1Xprv0H1 = "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs"
	vector1Xpub0H1 = "xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ"
)

// TestExtendedPrivateKey_Vector1 derives m/0'/1 from the vector 1 master
func TestExtendedPrivateKey_Vector1(t *testing.T) {
	is := is.New(t)
	algebra := ethereum.New()

	master, err := algebra.ParseExtendedPrivateKey(vector1Xprv)
	is.NoErr(err)
	is.Equal(master.String(), vector1Xprv)

	pub, err := master.ExtendedPublicKey()
	is.NoErr(err)
	is.Equal(pub.String(), vector1Xpub)

	child, err := master.Derive("m/0'/1")
	is.NoErr(err)
	is.Equal(child.String(), vector1Xprv0H1)

	childPub, err := child.ExtendedPublicKey()
	is.NoErr(err)
	is.Equal(childPub.String(), vector1Xpub0H1)
}

// TestExtendedKey_SamePointBothWays verifies private and public nodes agree
func TestExtendedKey_SamePointBothWays(t *testing.T) {
	is := is.New(t)
	algebra := ethereum.New()

	xprv, err := algebra.ParseExtendedPrivateKey(vector1Xprv)
	is.NoErr(err)
	xpub, err := algebra.ParseExtendedPublicKey(vector1Xpub)
	is.NoErr(err)

	privChild, err := xprv.Derive("m/3/7")
	is.NoErr(err)
	pubChild, err := xpub.Derive("m/3/7")
	is.NoErr(err)

	priv, err := privChild.PrivateKey()
	is.NoErr(err)
	pub, err := pubChild.PublicKey()
	is.NoErr(err)
	is.Equal(priv.PublicKey().String(), pub.String())
}

// TestExtendedPublicKey_Hardened verifies hardened steps need the private key
func TestExtendedPublicKey_Hardened(t *testing.T) {
	is := is.New(t)

	xpub, err := ethereum.New().ParseExtendedPublicKey(vector1Xpub)
	is.NoErr(err)
	_, err = xpub.Derive("m/0'")
	is.True(err != nil)
}

// TestDerive_RootPath verifies "m" leaves the key unchanged
func TestDerive_RootPath(t *testing.T) {
	is := is.New(t)

	xprv, err := ethereum.New().ParseExtendedPrivateKey(vector1Xprv)
	is.NoErr(err)
	same, err := xprv.Derive("m")
	is.NoErr(err)
	is.Equal(same.String(), vector1Xprv)
}

func TestParseExtendedKey_Invalid(t *testing.T) {
	is := is.New(t)
	algebra := ethereum.New()

	_, err := algebra.ParseExtendedPrivateKey(vector1Xpub)
	is.True(err != nil)
	_, err = algebra.ParseExtendedPublicKey(vector1Xprv)
	is.True(err != nil)
	_, err = algebra.ParseExtendedPrivateKey("xprv")
	is.True(err != nil)

	// tprv from BIP-32 testnet version bytes
	_, err = algebra.ParseExtendedPrivateKey(
		"tprv8ZgxMBicQKsPeDgjzdC36fs6bMjGApWDNLR9erAXMs5skhMv36j9MV5ecvfavji5khqjWaWSFhN3YcCUUdiKH6isR4Pwy3U5y5egddBr16m")
	is.True(err != nil)
}

func TestParsePath(t *testing.T) {
	h := uint32(hdkeychain.HardenedKeyStart)

	tests := []struct {
		path string
		want []uint32
		ok   bool
	}{
		{"m", nil, true},
		{"m/44'/60'/0'/0", []uint32{h + 44, h + 60, h, 0}, true},
		{"m/44'/60'/2'/0/0", []uint32{h + 44, h + 60, h + 2, 0, 0}, true},
		{"m/0/1", []uint32{0, 1}, true},
		{"44'/60'", nil, false},
		{"", nil, false},
		{"m/x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			is := is.New(t)
			got, err := ethereum.ParsePath(tt.path)
			if !tt.ok {
				is.True(err != nil)
				return
			}
			is.NoErr(err)
			is.Equal(got, tt.want)
		})
	}
}
