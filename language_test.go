// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import (
	"testing"

	"github.com/matryer/is"
)

// TestRecoveryOrder pins the wordlist priority
func TestRecoveryOrder(t *testing.T) {
	is := is.New(t)

	is.Equal(RecoveryOrder, []Language{
		ChineseSimplified,
		ChineseTraditional,
		English,
		French,
		Italian,
		Japanese,
		Korean,
		Spanish,
	})
	for _, l := range RecoveryOrder {
		is.Equal(len(l.Wordlist()), 2048)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"english", English, true},
		{"chinese_traditional", ChineseTraditional, true},
		{"Spanish", Spanish, true},
		{"fr", French, true},
		{"ja", Japanese, true},
		{"ko", Korean, true},
		{"zh-Hant", ChineseTraditional, true},
		{"zh-Hans", ChineseSimplified, true},
		{"Traditional Chinese", ChineseTraditional, true},
		{"en-US", English, true},
		{"zh-TW", ChineseTraditional, true},
		{"zh-HK", ChineseTraditional, true},
		{"zh-CN", ChineseSimplified, true},
		{"", "", false},
		{"klingon", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			is := is.New(t)
			got, ok := ParseLanguage(tt.in)
			is.Equal(ok, tt.ok)
			is.Equal(got, tt.want)
		})
	}
}

// TestLanguage_UnknownWordlist verifies unknown languages have no words
func TestLanguage_UnknownWordlist(t *testing.T) {
	is := is.New(t)
	is.True(Language("czech").Wordlist() == nil)
}
