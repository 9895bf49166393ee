package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/complex-gh/ethwallet"
)

// printWallet writes w as indented JSON or as the labeled text block,
// followed by a blank line.
func printWallet(out io.Writer, w *ethwallet.Wallet, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(w, "", "  ")
		if err != nil {
			return fmt.Errorf("could not encode wallet: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n\n", b)
		return err
	}
	_, err := fmt.Fprintf(out, "%s\n\n", w)
	return err
}
