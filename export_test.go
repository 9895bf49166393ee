// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ethwallet

import "io"

// SetEntropy replaces the composer's randomness. Tests only.
func SetEntropy(c *Composer, r io.Reader) {
	c.entropy = r
}
