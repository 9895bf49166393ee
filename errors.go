// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import (
	"errors"
	"fmt"
)

// Error kinds returned by the composer. Every error it returns matches
// exactly one of these with errors.Is.
var (
	ErrInvalidPrivateKey     = errors.New("invalid private key")
	ErrInvalidPublicKey      = errors.New("invalid public key")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidMnemonic       = errors.New("invalid mnemonic")
	ErrInvalidWordCount      = errors.New("invalid word count")
	ErrInvalidExtendedKey    = errors.New("invalid extended key")
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	ErrAmbiguousInput        = errors.New("ambiguous input")
	ErrNoInput               = errors.New("no input")
)

// AddressError reports an address that failed to parse. Address text cannot
// be turned into any other representation, so it is kept apart from the
// other kinds and is never worth retrying.
type AddressError struct {
	Address string
	Err     error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidAddress, e.Address, e.Err)
}

func (e *AddressError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidAddress.
func (e *AddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// kindError tags cause with kind.
func kindError(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}
