// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package ethereum implements the ethwallet key algebra for Ethereum:
// secp256k1 keys, EIP-55 addresses, BIP-32 extended keys on the bitcoin
// mainnet version bytes (xprv/xpub) and BIP-39 mnemonics.
package ethereum

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/complex-gh/ethwallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const privateKeySize = 32

// maxKeyAttempts bounds the rejection sampling in GeneratePrivateKey. An
// out-of-range scalar has probability below 2^-127.
const maxKeyAttempts = 16

// Algebra implements ethwallet.KeyAlgebra.
type Algebra struct{}

// New returns the Ethereum key algebra.
func New() *Algebra {
	return &Algebra{}
}

var _ ethwallet.KeyAlgebra = (*Algebra)(nil)

// PrivateKey is a secp256k1 private key.
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

// PublicKey derives the matching public key.
func (k *PrivateKey) PublicKey() ethwallet.PublicKey {
	return &PublicKey{key: &k.key.PublicKey}
}

// String returns the key as 64 lowercase hex characters.
func (k *PrivateKey) String() string {
	return hex.EncodeToString(crypto.FromECDSA(k.key))
}

// ECDSA returns the underlying key.
func (k *PrivateKey) ECDSA() *ecdsa.PrivateKey { return k.key }

// PublicKey is a secp256k1 public key.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// Address returns the Keccak-256 account address of the key.
func (k *PublicKey) Address() (ethwallet.Address, error) {
	if k.key == nil || k.key.X == nil {
		return nil, errors.New("empty public key")
	}
	return &Address{addr: crypto.PubkeyToAddress(*k.key)}, nil
}

// String returns the uncompressed point without its 0x04 prefix, as 128 hex
// characters.
func (k *PublicKey) String() string {
	return hex.EncodeToString(crypto.FromECDSAPub(k.key)[1:])
}

// Address is a 20-byte account address.
type Address struct {
	addr common.Address
}

// String returns the EIP-55 checksummed form.
func (a *Address) String() string {
	return a.addr.Hex()
}

// GeneratePrivateKey reads a fresh scalar from rand.
func (*Algebra) GeneratePrivateKey(rand io.Reader) (ethwallet.PrivateKey, error) {
	buf := make([]byte, privateKeySize)
	defer clear(buf)
	for range maxKeyAttempts {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("could not read entropy: %w", err)
		}
		key, err := crypto.ToECDSA(buf)
		if err != nil {
			continue
		}
		return &PrivateKey{key: key}, nil
	}
	return nil, errors.New("could not generate a valid private key")
}

// ParsePrivateKey parses 64 hex characters, with or without a 0x prefix.
func (*Algebra) ParsePrivateKey(s string) (ethwallet.PrivateKey, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	defer clear(raw)
	if len(raw) != privateKeySize {
		return nil, fmt.Errorf("want %d bytes, got %d", privateKeySize, len(raw))
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("could not parse private key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// ParsePublicKey parses a hex public key in one of three encodings: the
// 64-byte bare point, the 65-byte uncompressed point or the 33-byte
// compressed point. A 0x prefix is allowed.
func (*Algebra) ParsePublicKey(s string) (ethwallet.PublicKey, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	switch len(raw) {
	case 64:
		raw = append([]byte{0x04}, raw...)
	case 65, 33:
	default:
		return nil, fmt.Errorf("unexpected public key length %d", len(raw))
	}
	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("could not parse public key: %w", err)
	}
	key, err := publicKeyFromBtcec(pub)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// ParseAddress parses a 0x-prefixed 40 hex character address. All-lowercase
// and all-uppercase input is accepted as is; mixed case must carry a valid
// EIP-55 checksum.
func (*Algebra) ParseAddress(s string) (ethwallet.Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, errors.New("missing 0x prefix")
	}
	if !common.IsHexAddress(s) {
		return nil, errors.New("want 40 hex characters")
	}

	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) {
		mixed, err := common.NewMixedcaseAddressFromString("0x" + body)
		if err != nil {
			return nil, fmt.Errorf("could not parse address: %w", err)
		}
		if !mixed.ValidChecksum() {
			return nil, errors.New("bad EIP-55 checksum")
		}
	}
	return &Address{addr: common.HexToAddress(s)}, nil
}

// publicKeyFromBtcec moves a btcec point onto go-ethereum's curve.
func publicKeyFromBtcec(pub *btcec.PublicKey) (*PublicKey, error) {
	key, err := crypto.UnmarshalPubkey(pub.SerializeUncompressed())
	if err != nil {
		return nil, fmt.Errorf("could not convert public key: %w", err)
	}
	return &PublicKey{key: key}, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("could not decode hex: %w", err)
	}
	return raw, nil
}
