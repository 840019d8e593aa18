package crypto

import (
	"fmt"
	"io"
)

// randomBytes reads n bytes from r.
func randomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandom, err)
	}
	return b, nil
}

func checkLen(b []byte, want int, sentinel error, what string) error {
	if len(b) != want {
		return fmt.Errorf("%w: %s want %d bytes, got %d", sentinel, what, want, len(b))
	}
	return nil
}
