// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import "io"

// PrivateKey is a single secp256k1 private key.
type PrivateKey interface {
	PublicKey() PublicKey
	String() string
}

// PublicKey is a single secp256k1 public key.
type PublicKey interface {
	Address() (Address, error)
	String() string
}

// Address is a parsed account address. String returns the canonical form.
type Address interface {
	String() string
}

// ExtendedPrivateKey is a BIP-32 private node.
type ExtendedPrivateKey interface {
	// Derive walks path, which is rooted at this key ("m/...").
	Derive(path string) (ExtendedPrivateKey, error)
	ExtendedPublicKey() (ExtendedPublicKey, error)
	PrivateKey() (PrivateKey, error)
	String() string
}

// ExtendedPublicKey is a BIP-32 public node. Derive fails on hardened steps.
type ExtendedPublicKey interface {
	Derive(path string) (ExtendedPublicKey, error)
	PublicKey() (PublicKey, error)
	String() string
}

// Mnemonic is a validated phrase bound to one wordlist.
type Mnemonic interface {
	ExtendedPrivateKey(password string) (ExtendedPrivateKey, error)
	String() string
}

// KeyAlgebra supplies the key arithmetic, parsing and encoding the composer
// delegates to. Implementations must read randomness only from the reader
// they are handed.
type KeyAlgebra interface {
	GeneratePrivateKey(rand io.Reader) (PrivateKey, error)
	ParsePrivateKey(s string) (PrivateKey, error)
	ParsePublicKey(s string) (PublicKey, error)
	ParseAddress(s string) (Address, error)
	ParseExtendedPrivateKey(s string) (ExtendedPrivateKey, error)
	ParseExtendedPublicKey(s string) (ExtendedPublicKey, error)
	GenerateMnemonic(wordCount int, rand io.Reader, wordlist []string) (Mnemonic, error)
	ValidateMnemonic(phrase string, wordlist []string) (Mnemonic, error)
}
