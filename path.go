// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import "fmt"

// Derivation path conventions understood by ResolvePath.
const (
	ConventionEthereum     = "ethereum"
	ConventionKeepKey      = "keepkey"
	ConventionLedgerLegacy = "ledger-legacy"
	ConventionLedgerLive   = "ledger-live"
	ConventionTrezor       = "trezor"
)

// DefaultIndex is the account index used when none is given.
const DefaultIndex = "0"

// ResolvePath maps a convention name and an index to a derivation path.
// An empty convention means ethereum and an empty index means DefaultIndex.
// Any unrecognized convention is returned verbatim as a custom path; it is
// not validated here.
//
// The index is substituted as text, so "1" and "01" yield different paths.
func ResolvePath(convention, index string) string {
	if index == "" {
		index = DefaultIndex
	}
	switch convention {
	case "", ConventionEthereum, ConventionLedgerLegacy, ConventionTrezor:
		return fmt.Sprintf("m/44'/60'/0'/%s", index)
	case ConventionKeepKey:
		return fmt.Sprintf("m/44'/60'/%s'/0", index)
	case ConventionLedgerLive:
		return fmt.Sprintf("m/44'/60'/%s'/0/0", index)
	default:
		return convention
	}
}

// PathRequest is a requested convention (or custom path) plus an index.
type PathRequest struct {
	Convention string
	Index      string
}

// Resolve returns the concrete path. A nil request resolves to the
// ethereum default at index 0.
func (p *PathRequest) Resolve() string {
	if p == nil {
		return ResolvePath("", "")
	}
	return ResolvePath(p.Convention, p.Index)
}
