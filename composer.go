// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package ethwallet generates and imports Ethereum wallets.
//
// A Composer takes one RequestMode (random generation, import of a plain
// key or address, or HD derivation from a mnemonic or extended key) and
// turns it into a Wallet. All key arithmetic and encoding is delegated to a
// KeyAlgebra; package ethereum provides the implementation.
//
// HD paths are given either as a convention name (ethereum, keepkey,
// ledger-legacy, ledger-live, trezor) plus an index, or as a custom path.
package ethwallet

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Composer builds wallets. It holds no state between calls.
type Composer struct {
	algebra KeyAlgebra
	entropy io.Reader
	log     zerolog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for debug output. Key material is never
// logged.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Composer) {
		c.log = l
	}
}

// NewComposer returns a Composer backed by algebra. Randomness always comes
// from crypto/rand.
func NewComposer(algebra KeyAlgebra, opts ...Option) *Composer {
	c := &Composer{
		algebra: algebra,
		entropy: rand.Reader,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run composes req.Count wallets in order, passing each one to emit as soon
// as it is built. The first error from composing or from emit stops the run;
// wallets already emitted stay emitted. A Count below one runs once.
func (c *Composer) Run(req Request, emit func(*Wallet) error) error {
	count := req.Count
	if count < 1 {
		count = 1
	}
	for i := range count {
		wallet, err := c.Compose(req.Mode)
		if err != nil {
			c.log.Debug().Int("iteration", i).Err(err).Msg("compose failed")
			return err
		}
		if err := emit(wallet); err != nil {
			return err
		}
	}
	return nil
}

// Compose builds a single wallet for mode.
func (c *Composer) Compose(mode RequestMode) (*Wallet, error) {
	switch m := mode.(type) {
	case Random, *Random:
		c.log.Debug().Str("mode", "random").Msg("composing wallet")
		return c.random()
	case Import:
		return c.importWallet(m.Spec)
	case *Import:
		if m == nil {
			return nil, fmt.Errorf("%w: nil import request", ErrNoInput)
		}
		return c.importWallet(m.Spec)
	case HD:
		return c.hd(m.Spec)
	case *HD:
		if m == nil {
			return nil, fmt.Errorf("%w: nil hd request", ErrNoInput)
		}
		return c.hd(m.Spec)
	default:
		return nil, fmt.Errorf("%w: unsupported request mode %T", ErrNoInput, mode)
	}
}

func (c *Composer) random() (*Wallet, error) {
	privateKey, err := c.algebra.GeneratePrivateKey(c.entropy)
	if err != nil {
		return nil, kindError(ErrInvalidPrivateKey, err)
	}
	return c.fromPrivateKey(privateKey)
}

func (c *Composer) fromPrivateKey(privateKey PrivateKey) (*Wallet, error) {
	publicKey := privateKey.PublicKey()
	address, err := publicKey.Address()
	if err != nil {
		return nil, kindError(ErrInvalidPublicKey, err)
	}
	return &Wallet{
		PrivateKey: privateKey.String(),
		PublicKey:  publicKey.String(),
		Address:    address.String(),
	}, nil
}

func (c *Composer) importWallet(spec ImportSpec) (*Wallet, error) {
	switch s := spec.(type) {
	case PrivateKeyImport:
		c.log.Debug().Str("mode", "import").Str("input", "private_key").Msg("composing wallet")
		privateKey, err := c.algebra.ParsePrivateKey(s.Key)
		if err != nil {
			return nil, kindError(ErrInvalidPrivateKey, err)
		}
		return c.fromPrivateKey(privateKey)

	case PublicKeyImport:
		c.log.Debug().Str("mode", "import").Str("input", "public_key").Msg("composing wallet")
		publicKey, err := c.algebra.ParsePublicKey(s.Key)
		if err != nil {
			return nil, kindError(ErrInvalidPublicKey, err)
		}
		address, err := publicKey.Address()
		if err != nil {
			return nil, kindError(ErrInvalidPublicKey, err)
		}
		return &Wallet{
			PublicKey: publicKey.String(),
			Address:   address.String(),
		}, nil

	case AddressImport:
		c.log.Debug().Str("mode", "import").Str("input", "address").Msg("composing wallet")
		address, err := c.algebra.ParseAddress(s.Address)
		if err != nil {
			return nil, &AddressError{Address: s.Address, Err: err}
		}
		return &Wallet{Address: address.String()}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported import %T", ErrNoInput, spec)
	}
}

func (c *Composer) hd(spec HDSpec) (*Wallet, error) {
	switch s := spec.(type) {
	case Generate:
		c.log.Debug().Str("mode", "hd").Str("input", "generate").Msg("composing wallet")
		path := s.Path.Resolve()
		result, err := c.GenerateMnemonic(s.WordCount, s.Language, s.Password)
		if err != nil {
			return nil, err
		}
		return c.fromMaster(result, path, s.Password)

	case FromMnemonic:
		c.log.Debug().Str("mode", "hd").Str("input", "mnemonic").Msg("composing wallet")
		path := s.Path.Resolve()
		result, err := c.RecoverMnemonic(s.Phrase, s.Password)
		if err != nil {
			return nil, err
		}
		return c.fromMaster(result, path, s.Password)

	case FromExtendedPrivate:
		c.log.Debug().Str("mode", "hd").Str("input", "extended_private_key").Msg("composing wallet")
		key, err := c.algebra.ParseExtendedPrivateKey(s.Key)
		if err != nil {
			return nil, kindError(ErrInvalidExtendedKey, err)
		}
		var path string
		if s.Path != nil {
			path = s.Path.Resolve()
			if key, err = key.Derive(path); err != nil {
				return nil, kindError(ErrInvalidDerivationPath, fmt.Errorf("%s: %w", path, err))
			}
		}
		wallet, err := c.fromExtendedPrivateKey(key)
		if err != nil {
			return nil, err
		}
		wallet.Path = path
		return wallet, nil

	case FromExtendedPublic:
		c.log.Debug().Str("mode", "hd").Str("input", "extended_public_key").Msg("composing wallet")
		key, err := c.algebra.ParseExtendedPublicKey(s.Key)
		if err != nil {
			return nil, kindError(ErrInvalidExtendedKey, err)
		}
		var path string
		if s.Path != nil {
			path = s.Path.Resolve()
			if key, err = key.Derive(path); err != nil {
				return nil, kindError(ErrInvalidDerivationPath, fmt.Errorf("%s: %w", path, err))
			}
		}
		publicKey, err := key.PublicKey()
		if err != nil {
			return nil, kindError(ErrInvalidExtendedKey, err)
		}
		address, err := publicKey.Address()
		if err != nil {
			return nil, kindError(ErrInvalidPublicKey, err)
		}
		return &Wallet{
			Path:              path,
			ExtendedPublicKey: key.String(),
			PublicKey:         publicKey.String(),
			Address:           address.String(),
		}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported hd import %T", ErrNoInput, spec)
	}
}

// fromMaster derives the child at path from a mnemonic's master key.
func (c *Composer) fromMaster(result *MnemonicResult, path, password string) (*Wallet, error) {
	child, err := result.Master.Derive(path)
	if err != nil {
		return nil, kindError(ErrInvalidDerivationPath, fmt.Errorf("%s: %w", path, err))
	}
	wallet, err := c.fromExtendedPrivateKey(child)
	if err != nil {
		return nil, err
	}
	wallet.Path = path
	wallet.Password = password
	wallet.Mnemonic = result.Phrase
	return wallet, nil
}

func (c *Composer) fromExtendedPrivateKey(key ExtendedPrivateKey) (*Wallet, error) {
	extendedPublicKey, err := key.ExtendedPublicKey()
	if err != nil {
		return nil, kindError(ErrInvalidExtendedKey, err)
	}
	privateKey, err := key.PrivateKey()
	if err != nil {
		return nil, kindError(ErrInvalidExtendedKey, err)
	}
	publicKey, err := extendedPublicKey.PublicKey()
	if err != nil {
		return nil, kindError(ErrInvalidExtendedKey, err)
	}
	address, err := publicKey.Address()
	if err != nil {
		return nil, kindError(ErrInvalidPublicKey, err)
	}
	return &Wallet{
		ExtendedPrivateKey: key.String(),
		ExtendedPublicKey:  extendedPublicKey.String(),
		PrivateKey:         privateKey.String(),
		PublicKey:          publicKey.String(),
		Address:            address.String(),
	}, nil
}
