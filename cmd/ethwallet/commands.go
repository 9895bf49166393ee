package main

import (
	"github.com/complex-gh/ethwallet"
	"github.com/complex-gh/ethwallet/internal/log"
	"github.com/spf13/cobra"
)

var (
	hdLanguage    string
	hdPassword    string
	hdAskPassword bool
	hdDerivation  string
	hdIndex       string
	hdWordCount   int

	importPrivate string
	importPublic  string
	importAddress string

	importHDMnemonic    string
	importHDPrivate     string
	importHDPublic      string
	importHDDerivation  string
	importHDPassword    string
	importHDAskPassword bool
	importHDAccount     string
	importHDChange      string
	importHDIndex       string

	hdCmd = &cobra.Command{
		Use:   "hd",
		Short: "Generate an HD wallet from a new mnemonic",
		Example: `  ethwallet hd
  ethwallet hd --language french --word-count 18
  ethwallet hd --derivation keepkey --index 3 --password hunter2`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			password, err := passwordFlag(hdPassword, hdAskPassword)
			if err != nil {
				return err
			}
			return run(ethwallet.HD{Spec: ethwallet.Generate{
				Language:  languageFlag(hdLanguage),
				WordCount: hdWordCount,
				Password:  password,
				Path:      &ethwallet.PathRequest{Convention: hdDerivation, Index: hdIndex},
			}})
		},
	}

	importCmd = &cobra.Command{
		Use:   "import",
		Short: "Import a private key, public key or address",
		Example: `  ethwallet import --private 4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318
  ethwallet import --address 0x2c7536e3605d9c16a7a3d7b1898e529396a65c23`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			spec, err := ethwallet.NewImportSpec(importPrivate, importPublic, importAddress)
			if err != nil {
				return err
			}
			return run(ethwallet.Import{Spec: spec})
		},
	}

	importHDCmd = &cobra.Command{
		Use:   "import-hd",
		Short: "Import an HD wallet from a mnemonic or extended key",
		Long: `Import an HD wallet from a mnemonic or extended key.

A mnemonic is tried against every supported wordlist in a fixed order:
chinese_simplified, chinese_traditional, english, french, italian,
japanese, korean, spanish. The first list that validates it wins.

An extended key is only derived further when --derivation is given.`,
		Example: `  ethwallet import-hd --mnemonic "..." --derivation trezor --index 1
  ethwallet import-hd --extended-private xprv... --derivation "m/0/5"
  ethwallet import-hd --extended-public xpub...`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if importHDAccount != "" || importHDChange != "" {
				log.CLI.Debug().Msg("--account and --change are accepted but not used by any convention")
			}
			password := importHDPassword
			if importHDMnemonic != "" {
				var err error
				if password, err = passwordFlag(importHDPassword, importHDAskPassword); err != nil {
					return err
				}
			}
			spec, err := ethwallet.NewHDImportSpec(ethwallet.HDImportValues{
				Mnemonic:           importHDMnemonic,
				ExtendedPrivateKey: importHDPrivate,
				ExtendedPublicKey:  importHDPublic,
				Password:           password,
				Derivation:         importHDDerivation,
				Index:              importHDIndex,
			})
			if err != nil {
				return err
			}
			return run(ethwallet.HD{Spec: spec})
		},
	}
)

func init() {
	hdCmd.Flags().StringVarP(&hdLanguage, "language", "l", cfg.Language, "Mnemonic language (english, french, japanese, zh-Hant, ...)")
	hdCmd.Flags().StringVarP(&hdPassword, "password", "p", "", "BIP-39 password mixed into the seed")
	hdCmd.Flags().BoolVar(&hdAskPassword, "ask-password", false, "Prompt for the BIP-39 password without echo")
	hdCmd.Flags().StringVarP(&hdDerivation, "derivation", "d", "", "Derivation convention or custom path")
	hdCmd.Flags().StringVarP(&hdIndex, "index", "i", ethwallet.DefaultIndex, "Account index for the derivation convention")
	hdCmd.Flags().IntVarP(&hdWordCount, "word-count", "w", cfg.WordCount, "Number of mnemonic words (12, 15, 18, 21, 24)")
	hdCmd.MarkFlagsMutuallyExclusive("password", "ask-password")

	importCmd.Flags().StringVar(&importPrivate, "private", "", "Private key in hex")
	importCmd.Flags().StringVar(&importPublic, "public", "", "Public key in hex")
	importCmd.Flags().StringVar(&importAddress, "address", "", "Address")

	importHDCmd.Flags().StringVarP(&importHDMnemonic, "mnemonic", "m", "", "Mnemonic phrase in any supported language")
	importHDCmd.Flags().StringVar(&importHDPrivate, "extended-private", "", "Extended private key (xprv)")
	importHDCmd.Flags().StringVar(&importHDPublic, "extended-public", "", "Extended public key (xpub)")
	importHDCmd.Flags().StringVarP(&importHDDerivation, "derivation", "d", "", "Derivation convention or custom path")
	importHDCmd.Flags().StringVarP(&importHDPassword, "password", "p", "", "BIP-39 password used with --mnemonic")
	importHDCmd.Flags().BoolVar(&importHDAskPassword, "ask-password", false, "Prompt for the BIP-39 password without echo")
	importHDCmd.Flags().StringVar(&importHDAccount, "account", "", "Account (accepted for compatibility, not used)")
	importHDCmd.Flags().StringVar(&importHDChange, "change", "", "Change (accepted for compatibility, not used)")
	importHDCmd.Flags().StringVarP(&importHDIndex, "index", "i", ethwallet.DefaultIndex, "Account index for the derivation convention")
	importHDCmd.MarkFlagsMutuallyExclusive("password", "ask-password")
}

// languageFlag resolves the --language value. Unknown languages fall back
// to English with a warning.
func languageFlag(s string) ethwallet.Language {
	if s == "" {
		return ethwallet.DefaultLanguage
	}
	l, ok := ethwallet.ParseLanguage(s)
	if !ok {
		log.CLI.Warn().Str("language", s).Msg("unsupported language, using english")
		return ethwallet.DefaultLanguage
	}
	return l
}

func passwordFlag(password string, ask bool) (string, error) {
	if !ask {
		return password, nil
	}
	return askSeedPassword()
}
