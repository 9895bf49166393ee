// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import "strings"

// Wallet is the result of one composer iteration. Empty optional fields are
// absent; Address is always set.
type Wallet struct {
	Path               string `json:"path,omitempty"`
	Password           string `json:"password,omitempty"`
	Mnemonic           string `json:"mnemonic,omitempty"`
	ExtendedPrivateKey string `json:"extended_private_key,omitempty"`
	ExtendedPublicKey  string `json:"extended_public_key,omitempty"`
	PrivateKey         string `json:"private_key,omitempty"`
	PublicKey          string `json:"public_key,omitempty"`
	Address            string `json:"address"`
}

// String renders the labeled text block: a leading newline, then one
// indented line per present field in a fixed order, Address last.
func (w *Wallet) String() string {
	fields := []struct {
		label, value string
	}{
		{"Path", w.Path},
		{"Password", w.Password},
		{"Mnemonic", w.Mnemonic},
		{"Extended Private Key", w.ExtendedPrivateKey},
		{"Extended Public Key", w.ExtendedPublicKey},
		{"Private Key", w.PrivateKey},
		{"Public Key", w.PublicKey},
	}

	var b strings.Builder
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		writeField(&b, f.label, f.value)
	}
	writeField(&b, "Address", w.Address)

	return "\n" + strings.TrimSuffix(b.String(), "\n")
}

// Labels are padded to the width of "Extended Private Key".
func writeField(b *strings.Builder, label, value string) {
	const labelWidth = 21
	b.WriteString("      ")
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", labelWidth-len(label)))
	b.WriteString(value)
	b.WriteString("\n")
}
