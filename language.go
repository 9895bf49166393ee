// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import (
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language identifies a BIP-39 wordlist.
type Language string

// Supported wordlists.
const (
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	English            Language = "english"
	French             Language = "french"
	Italian            Language = "italian"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
)

// DefaultLanguage is used for generation when no language is requested.
const DefaultLanguage = English

// RecoveryOrder is the order in which wordlists are tried when recovering a
// phrase. Wordlists share some words, so the first list that validates a
// phrase decides its language; this order must not change.
var RecoveryOrder = []Language{
	ChineseSimplified,
	ChineseTraditional,
	English,
	French,
	Italian,
	Japanese,
	Korean,
	Spanish,
}

// Wordlist returns the 2048 words of l, or nil if l is unknown.
func (l Language) Wordlist() []string {
	switch l {
	case ChineseSimplified:
		return wordlists.ChineseSimplified
	case ChineseTraditional:
		return wordlists.ChineseTraditional
	case English:
		return wordlists.English
	case French:
		return wordlists.French
	case Italian:
		return wordlists.Italian
	case Japanese:
		return wordlists.Japanese
	case Korean:
		return wordlists.Korean
	case Spanish:
		return wordlists.Spanish
	}
	return nil
}

func (l Language) String() string { return string(l) }

var languageTags = map[lang.Tag]Language{
	lang.Chinese:              ChineseSimplified,
	lang.SimplifiedChinese:    ChineseSimplified,
	lang.TraditionalChinese:   ChineseTraditional,
	lang.AmericanEnglish:      English,
	lang.BritishEnglish:       English,
	lang.English:              English,
	lang.French:               French,
	lang.Italian:              Italian,
	lang.Japanese:             Japanese,
	lang.Korean:               Korean,
	lang.Spanish:              Spanish,
	lang.EuropeanSpanish:      Spanish,
	lang.LatinAmericanSpanish: Spanish,
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// ParseLanguage resolves s to a wordlist. It accepts the identifiers above
// ("chinese_traditional"), English language names ("Traditional Chinese")
// and BCP 47 tags ("zh-Hant").
func ParseLanguage(s string) (Language, bool) {
	if s == "" {
		return "", false
	}
	if l := Language(strings.ToLower(strings.TrimSpace(s))); l.Wordlist() != nil {
		return l, true
	}

	name := sanitizeLang(s)
	en := display.English.Languages()
	for t, l := range languageTags {
		if sanitizeLang(en.Name(t)) == name {
			return l, true
		}
	}

	tag, err := lang.Parse(name)
	if err != nil || tag == lang.Und {
		return "", false
	}
	if l, ok := languageTags[tag]; ok {
		return l, true
	}
	// zh-TW and friends: match on the script, inferred from the region when
	// absent, before falling back to the base.
	base, _ := tag.Base()
	if script, conf := tag.Script(); conf != lang.No {
		if withScript, err := lang.Compose(base, script); err == nil {
			if l, ok := languageTags[withScript]; ok {
				return l, true
			}
		}
	}
	l, ok := languageTags[lang.Make(base.String())]
	return l, ok
}
