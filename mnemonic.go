// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import (
	"errors"
	"fmt"
)

// DefaultWordCount is the mnemonic length used when none is requested.
const DefaultWordCount = 12

// MnemonicResult is a generated or recovered mnemonic together with the
// master key it seeds.
type MnemonicResult struct {
	Phrase   string
	Language Language
	Master   ExtendedPrivateKey
}

// GenerateMnemonic creates a new phrase of wordCount words from the given
// wordlist and derives its master key with password.
//
// A zero wordCount means DefaultWordCount and an empty language means
// DefaultLanguage. Counts the algebra cannot encode fail with
// ErrInvalidWordCount.
func (c *Composer) GenerateMnemonic(wordCount int, language Language, password string) (*MnemonicResult, error) {
	if wordCount == 0 {
		wordCount = DefaultWordCount
	}
	if language == "" {
		language = DefaultLanguage
	}
	wordlist := language.Wordlist()
	if wordlist == nil {
		c.log.Warn().Str("language", language.String()).Msg("unknown language, using english")
		language = DefaultLanguage
		wordlist = language.Wordlist()
	}

	mnemonic, err := c.algebra.GenerateMnemonic(wordCount, c.entropy, wordlist)
	if err != nil {
		return nil, kindError(ErrInvalidWordCount, fmt.Errorf("%d words: %w", wordCount, err))
	}
	master, err := mnemonic.ExtendedPrivateKey(password)
	if err != nil {
		return nil, kindError(ErrInvalidMnemonic, err)
	}

	return &MnemonicResult{
		Phrase:   mnemonic.String(),
		Language: language,
		Master:   master,
	}, nil
}

// RecoverMnemonic validates phrase against every wordlist in RecoveryOrder
// and returns on the first match. Failures of individual wordlists are not
// reported; ErrInvalidMnemonic is returned once all of them have failed.
func (c *Composer) RecoverMnemonic(phrase, password string) (*MnemonicResult, error) {
	for _, language := range RecoveryOrder {
		mnemonic, err := c.algebra.ValidateMnemonic(phrase, language.Wordlist())
		if err != nil {
			continue
		}
		master, err := mnemonic.ExtendedPrivateKey(password)
		if err != nil {
			continue
		}

		c.log.Debug().Str("language", language.String()).Msg("recovered mnemonic")
		return &MnemonicResult{
			Phrase:   mnemonic.String(),
			Language: language,
			Master:   master,
		}, nil
	}

	return nil, kindError(ErrInvalidMnemonic, errors.New("phrase does not match any supported wordlist"))
}
