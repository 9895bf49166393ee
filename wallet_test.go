// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

// TestWallet_String verifies field order and label alignment
func TestWallet_String(t *testing.T) {
	is := is.New(t)

	w := &Wallet{
		Path:               "m/44'/60'/0'/0",
		Password:           "pw",
		Mnemonic:           "one two",
		ExtendedPrivateKey: "xprv1",
		ExtendedPublicKey:  "xpub1",
		PrivateKey:         "aa",
		PublicKey:          "bb",
		Address:            "0xcc",
	}

	want := "\n" +
		"      Path                 m/44'/60'/0'/0\n" +
		"      Password             pw\n" +
		"      Mnemonic             one two\n" +
		"      Extended Private Key xprv1\n" +
		"      Extended Public Key  xpub1\n" +
		"      Private Key          aa\n" +
		"      Public Key           bb\n" +
		"      Address              0xcc"
	is.Equal(w.String(), want)
}

// TestWallet_StringOmitsEmpty verifies absent fields are not rendered
func TestWallet_StringOmitsEmpty(t *testing.T) {
	is := is.New(t)

	w := &Wallet{Address: "0xcc"}
	is.Equal(w.String(), "\n      Address              0xcc")
}

// TestAddressError verifies the error kind and message
func TestAddressError(t *testing.T) {
	is := is.New(t)

	cause := errors.New("missing 0x prefix")
	err := error(&AddressError{Address: "abc", Err: cause})
	is.True(errors.Is(err, ErrInvalidAddress))
	is.True(errors.Is(err, cause))
	is.True(!errors.Is(err, ErrInvalidPrivateKey))
	is.Equal(err.Error(), `invalid address "abc": missing 0x prefix`)
}
