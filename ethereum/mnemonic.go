// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethereum

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/complex-gh/ethwallet"
	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// BIP-39 seed stretching parameters.
const (
	pbkdf2Iterations = 2048
	seedLength       = 64
)

var (
	// go-bip39 keeps its active wordlist in a package global. Every use
	// goes through wordlistMu and leaves English behind for other callers.
	wordlistMu sync.Mutex

	// folded holds an NFKD-folded lookup table per wordlist, keyed by the
	// address of the list's backing array.
	folded = map[*string]map[string]string{}
)

// Mnemonic is a BIP-39 phrase validated against one wordlist.
type Mnemonic struct {
	phrase string
}

// ExtendedPrivateKey stretches the phrase and password into a seed and
// returns the BIP-32 master key. Both inputs are NFKD-normalized first.
func (m *Mnemonic) ExtendedPrivateKey(password string) (ethwallet.ExtendedPrivateKey, error) {
	seed := pbkdf2.Key(
		[]byte(norm.NFKD.String(m.phrase)),
		[]byte("mnemonic"+norm.NFKD.String(password)),
		pbkdf2Iterations,
		seedLength,
		sha512.New,
	)
	defer clear(seed)

	master, err := hdkeychain.NewMaster(seed, netParams)
	if err != nil {
		return nil, fmt.Errorf("could not create master key: %w", err)
	}
	return &ExtendedPrivateKey{key: master}, nil
}

// String returns the phrase with single spaces between words.
func (m *Mnemonic) String() string { return m.phrase }

// GenerateMnemonic draws wordCount/3*32 bits from rand and encodes them
// with wordlist. Valid counts are 12, 15, 18, 21 and 24.
func (*Algebra) GenerateMnemonic(wordCount int, rand io.Reader, wordlist []string) (ethwallet.Mnemonic, error) {
	if len(wordlist) != 2048 {
		return nil, errors.New("wordlist must have 2048 words")
	}
	if wordCount <= 0 || wordCount%3 != 0 {
		return nil, fmt.Errorf("word count %d is not a multiple of 3", wordCount)
	}
	bits := wordCount / 3 * 32
	if bits < 128 || bits > 256 {
		return nil, fmt.Errorf("word count %d is out of range (12-24)", wordCount)
	}

	entropy := make([]byte, bits/8)
	defer clear(entropy)
	if _, err := io.ReadFull(rand, entropy); err != nil {
		return nil, fmt.Errorf("could not read entropy: %w", err)
	}

	var phrase string
	err := withWordlist(wordlist, func() error {
		var err error
		phrase, err = bip39.NewMnemonic(entropy)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a mnemonic set of words: %w", err)
	}
	return &Mnemonic{phrase: phrase}, nil
}

// ValidateMnemonic checks phrase against wordlist: every word must be in
// the list (compared after NFKD folding), the word count must be valid and
// the checksum must match. The returned mnemonic uses the list's spelling.
func (*Algebra) ValidateMnemonic(phrase string, wordlist []string) (ethwallet.Mnemonic, error) {
	if len(wordlist) != 2048 {
		return nil, errors.New("wordlist must have 2048 words")
	}
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil, errors.New("empty phrase")
	}

	var canonical string
	err := withWordlist(wordlist, func() error {
		lookup := foldedWordlist(wordlist)
		for i, w := range words {
			word, ok := lookup[norm.NFKD.String(w)]
			if !ok {
				return fmt.Errorf("word %d is not in the wordlist", i+1)
			}
			words[i] = word
		}
		canonical = strings.Join(words, " ")
		_, err := bip39.EntropyFromMnemonic(canonical)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Mnemonic{phrase: canonical}, nil
}

// withWordlist runs fn with go-bip39 switched to wordlist.
func withWordlist(wordlist []string, fn func() error) error {
	wordlistMu.Lock()
	defer wordlistMu.Unlock()

	bip39.SetWordList(wordlist)
	defer bip39.SetWordList(wordlists.English)
	return fn()
}

// foldedWordlist must be called with wordlistMu held.
func foldedWordlist(wordlist []string) map[string]string {
	if m, ok := folded[&wordlist[0]]; ok {
		return m
	}
	m := make(map[string]string, len(wordlist))
	for _, w := range wordlist {
		m[norm.NFKD.String(w)] = w
	}
	folded[&wordlist[0]] = m
	return m
}
