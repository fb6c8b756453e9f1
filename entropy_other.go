//go:build !linux

package random

import "crypto/rand"

// fillEntropy fills buf via crypto/rand on platforms without a direct getrandom(2) binding.
func fillEntropy(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
