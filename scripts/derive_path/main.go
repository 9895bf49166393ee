// derive_path derives an Ethereum address from a BIP39 mnemonic for testing.
//
// Usage:
//
//	go run ./scripts/derive_path "m/44'/60'/0'/0/0" "your seed phrase here"
//
// Or with stdin:
//
//	echo "your seed phrase" | go run ./scripts/derive_path "m/44'/60'/0'/0/0"
//
// The first argument may also be a convention name such as ledger-live, in
// which case index 0 is used. The phrase may be in any supported language.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/complex-gh/ethwallet"
	"github.com/complex-gh/ethwallet/ethereum"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	path := os.Args[1]

	var mnemonic string
	if len(os.Args) > 2 {
		mnemonic = strings.Join(os.Args[2:], " ")
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			mnemonic = strings.TrimSpace(scanner.Text())
		}
	}

	if mnemonic == "" {
		usage()
	}

	composer := ethwallet.NewComposer(ethereum.New())
	wallet, err := composer.Compose(ethwallet.HD{Spec: ethwallet.FromMnemonic{
		Phrase: mnemonic,
		Path:   &ethwallet.PathRequest{Convention: path},
	}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", wallet.Path, wallet.Address)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: derive_path <path> \"seed phrase\"")
	fmt.Fprintln(os.Stderr, "   or: echo \"seed phrase\" | derive_path <path>")
	os.Exit(1)
}
