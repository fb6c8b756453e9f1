//go:build linux

package random

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// fillEntropy fills buf from the kernel's getrandom(2) pool, retrying on short reads and EINTR.
func fillEntropy(buf []byte) error {
	for len(buf) > 0 {
		n, err := unix.Getrandom(buf, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("getrandom: %w", err)
		}
		buf = buf[n:]
	}
	return nil
}
