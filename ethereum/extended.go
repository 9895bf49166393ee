// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/complex-gh/ethwallet"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/stephenlacy/go-ethereum-hdwallet"
)

// Extended keys use the bitcoin mainnet version bytes, like every hardware
// wallet exporting Ethereum xpubs.
var netParams = &chaincfg.MainNetParams

// ExtendedPrivateKey is a BIP-32 private node.
type ExtendedPrivateKey struct {
	key *hdkeychain.ExtendedKey
}

// Derive walks path from this key.
func (k *ExtendedPrivateKey) Derive(path string) (ethwallet.ExtendedPrivateKey, error) {
	child, err := derive(k.key, path)
	if err != nil {
		return nil, err
	}
	return &ExtendedPrivateKey{key: child}, nil
}

// ExtendedPublicKey returns the neutered node.
func (k *ExtendedPrivateKey) ExtendedPublicKey() (ethwallet.ExtendedPublicKey, error) {
	pub, err := k.key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("could not neuter key: %w", err)
	}
	return &ExtendedPublicKey{key: pub}, nil
}

// PrivateKey returns the node's signing key.
func (k *ExtendedPrivateKey) PrivateKey() (ethwallet.PrivateKey, error) {
	priv, err := k.key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("could not read private key: %w", err)
	}
	raw := priv.Serialize()
	defer clear(raw)
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("could not convert private key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

func (k *ExtendedPrivateKey) String() string { return k.key.String() }

// ExtendedPublicKey is a BIP-32 public node.
type ExtendedPublicKey struct {
	key *hdkeychain.ExtendedKey
}

// Derive walks path from this key. Hardened steps fail since they need the
// private key.
func (k *ExtendedPublicKey) Derive(path string) (ethwallet.ExtendedPublicKey, error) {
	child, err := derive(k.key, path)
	if err != nil {
		return nil, err
	}
	return &ExtendedPublicKey{key: child}, nil
}

// PublicKey returns the node's public key.
func (k *ExtendedPublicKey) PublicKey() (ethwallet.PublicKey, error) {
	pub, err := k.key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("could not read public key: %w", err)
	}
	key, err := publicKeyFromBtcec(pub)
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (k *ExtendedPublicKey) String() string { return k.key.String() }

// ParseExtendedPrivateKey parses a base58 xprv.
func (*Algebra) ParseExtendedPrivateKey(s string) (ethwallet.ExtendedPrivateKey, error) {
	key, err := parseExtendedKey(s)
	if err != nil {
		return nil, err
	}
	if !key.IsPrivate() {
		return nil, errors.New("extended public key given where a private one is required")
	}
	return &ExtendedPrivateKey{key: key}, nil
}

// ParseExtendedPublicKey parses a base58 xpub.
func (*Algebra) ParseExtendedPublicKey(s string) (ethwallet.ExtendedPublicKey, error) {
	key, err := parseExtendedKey(s)
	if err != nil {
		return nil, err
	}
	if key.IsPrivate() {
		return nil, errors.New("extended private key given where a public one is required")
	}
	return &ExtendedPublicKey{key: key}, nil
}

func parseExtendedKey(s string) (*hdkeychain.ExtendedKey, error) {
	key, err := hdkeychain.NewKeyFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("could not parse extended key: %w", err)
	}
	if !key.IsForNet(netParams) {
		return nil, errors.New("extended key is not an xprv or xpub")
	}
	return key, nil
}

// ParsePath parses an m-rooted derivation path such as m/44'/60'/0'/0.
// Relative paths are rejected rather than silently rooted elsewhere.
func ParsePath(path string) ([]uint32, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed != "m" && !strings.HasPrefix(trimmed, "m/") {
		return nil, fmt.Errorf("path %q must start with m/", path)
	}
	if trimmed == "m" {
		return nil, nil
	}
	indices, err := hdwallet.ParseDerivationPath(trimmed)
	if err != nil {
		return nil, fmt.Errorf("could not parse path %q: %w", path, err)
	}
	return indices, nil
}

func derive(key *hdkeychain.ExtendedKey, path string) (*hdkeychain.ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	for _, index := range indices {
		key, err = key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("could not derive child %s: %w", formatIndex(index), err)
		}
	}
	return key, nil
}

func formatIndex(index uint32) string {
	if index >= hdkeychain.HardenedKeyStart {
		return fmt.Sprintf("%d'", index-hdkeychain.HardenedKeyStart)
	}
	return fmt.Sprintf("%d", index)
}
