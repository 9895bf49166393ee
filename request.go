// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import "fmt"

// RequestMode selects what the composer builds. It is one of Random, Import
// or HD.
type RequestMode interface {
	requestMode()
}

// Random generates a fresh private key.
type Random struct{}

// Import reads plain key or address material.
type Import struct {
	Spec ImportSpec
}

// HD derives a wallet from a mnemonic or an extended key.
type HD struct {
	Spec HDSpec
}

func (Random) requestMode() {}
func (Import) requestMode() {}
func (HD) requestMode()     {}

// ImportSpec is one of PrivateKeyImport, PublicKeyImport or AddressImport.
type ImportSpec interface {
	importSpec()
}

// PrivateKeyImport imports a hex private key.
type PrivateKeyImport struct{ Key string }

// PublicKeyImport imports a hex public key.
type PublicKeyImport struct{ Key string }

// AddressImport imports an address.
type AddressImport struct{ Address string }

func (PrivateKeyImport) importSpec() {}
func (PublicKeyImport) importSpec()  {}
func (AddressImport) importSpec()    {}

// NewImportSpec builds an ImportSpec from optional values, exactly one of
// which must be non-empty.
func NewImportSpec(privateKey, publicKey, address string) (ImportSpec, error) {
	var specs []ImportSpec
	if privateKey != "" {
		specs = append(specs, PrivateKeyImport{Key: privateKey})
	}
	if publicKey != "" {
		specs = append(specs, PublicKeyImport{Key: publicKey})
	}
	if address != "" {
		specs = append(specs, AddressImport{Address: address})
	}
	switch len(specs) {
	case 0:
		return nil, fmt.Errorf("%w: one of private key, public key or address is required", ErrNoInput)
	case 1:
		return specs[0], nil
	default:
		return nil, fmt.Errorf("%w: only one of private key, public key or address may be given", ErrAmbiguousInput)
	}
}

// HDSpec is one of Generate, FromMnemonic, FromExtendedPrivate or
// FromExtendedPublic.
type HDSpec interface {
	hdSpec()
}

// Generate creates a new mnemonic and derives along Path.
// A zero WordCount means 12 and an empty Language means English.
type Generate struct {
	Language  Language
	WordCount int
	Password  string
	Path      *PathRequest
}

// FromMnemonic recovers Phrase and derives along Path.
type FromMnemonic struct {
	Phrase   string
	Password string
	Path     *PathRequest
}

// FromExtendedPrivate imports an xprv. A nil Path means no further
// derivation.
type FromExtendedPrivate struct {
	Key  string
	Path *PathRequest
}

// FromExtendedPublic imports an xpub. A nil Path means no further
// derivation.
type FromExtendedPublic struct {
	Key  string
	Path *PathRequest
}

func (Generate) hdSpec()            {}
func (FromMnemonic) hdSpec()        {}
func (FromExtendedPrivate) hdSpec() {}
func (FromExtendedPublic) hdSpec()  {}

// HDImportValues are the optional inputs of an HD import, as a caller
// collects them before it knows which one is set.
type HDImportValues struct {
	Mnemonic           string
	ExtendedPrivateKey string
	ExtendedPublicKey  string
	Password           string

	// Derivation is a convention name or custom path, empty when none was
	// requested. Index is the account index for conventions.
	Derivation string
	Index      string
}

// NewHDImportSpec builds an HDSpec from v. Exactly one of Mnemonic,
// ExtendedPrivateKey and ExtendedPublicKey must be set.
//
// A mnemonic always derives, falling back to the ethereum convention. An
// extended key only derives further when Derivation is set. Password only
// applies to a mnemonic.
func NewHDImportSpec(v HDImportValues) (HDSpec, error) {
	var explicit *PathRequest
	if v.Derivation != "" {
		explicit = &PathRequest{Convention: v.Derivation, Index: v.Index}
	}

	var specs []HDSpec
	if v.Mnemonic != "" {
		specs = append(specs, FromMnemonic{
			Phrase:   v.Mnemonic,
			Password: v.Password,
			Path:     &PathRequest{Convention: v.Derivation, Index: v.Index},
		})
	}
	if v.ExtendedPrivateKey != "" {
		specs = append(specs, FromExtendedPrivate{Key: v.ExtendedPrivateKey, Path: explicit})
	}
	if v.ExtendedPublicKey != "" {
		specs = append(specs, FromExtendedPublic{Key: v.ExtendedPublicKey, Path: explicit})
	}
	switch len(specs) {
	case 0:
		return nil, fmt.Errorf("%w: one of mnemonic, extended private key or extended public key is required", ErrNoInput)
	case 1:
		return specs[0], nil
	default:
		return nil, fmt.Errorf("%w: only one of mnemonic, extended private key or extended public key may be given", ErrAmbiguousInput)
	}
}

// Request is one invocation: a mode repeated Count times.
type Request struct {
	Mode  RequestMode
	Count int
}
