// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import (
	"testing"

	"github.com/matryer/is"
)

// TestResolvePath checks every convention against its template
func TestResolvePath(t *testing.T) {
	tests := []struct {
		convention string
		index      string
		want       string
	}{
		{"", "", "m/44'/60'/0'/0"},
		{"", "4", "m/44'/60'/0'/4"},
		{"ethereum", "7", "m/44'/60'/0'/7"},
		{"keepkey", "2", "m/44'/60'/2'/0"},
		{"ledger-legacy", "3", "m/44'/60'/0'/3"},
		{"ledger-live", "5", "m/44'/60'/5'/0/0"},
		{"trezor", "1", "m/44'/60'/0'/1"},
		{"ledger-live", "", "m/44'/60'/0'/0/0"},
		{"m/44'/60'/0'/0/9", "3", "m/44'/60'/0'/0/9"},
		{"not a path", "", "not a path"},
	}

	for _, tt := range tests {
		t.Run(tt.convention+"/"+tt.index, func(t *testing.T) {
			is := is.New(t)
			is.Equal(ResolvePath(tt.convention, tt.index), tt.want)
		})
	}
}

// TestResolvePath_IndexIsLiteral verifies the index is substituted as text
func TestResolvePath_IndexIsLiteral(t *testing.T) {
	is := is.New(t)

	is.Equal(ResolvePath("keepkey", "01"), "m/44'/60'/01'/0")
	is.Equal(ResolvePath("ethereum", "0/1"), "m/44'/60'/0'/0/1")
}

// TestPathRequest_Resolve covers nil and populated requests
func TestPathRequest_Resolve(t *testing.T) {
	is := is.New(t)

	var nilRequest *PathRequest
	is.Equal(nilRequest.Resolve(), "m/44'/60'/0'/0")
	is.Equal((&PathRequest{Convention: "ledger-live", Index: "2"}).Resolve(), "m/44'/60'/2'/0/0")
	is.Equal((&PathRequest{Index: "3"}).Resolve(), "m/44'/60'/0'/3")
}
