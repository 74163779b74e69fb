// Package security guards file writes and reads against untrusted input.
package security

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

var (
	// ErrUnsafePath is returned for output names that could leave their directory.
	ErrUnsafePath = errors.New("unsafe output path")

	// ErrSizeLimit is returned once a reader produces more than its limit.
	ErrSizeLimit = errors.New("input size limit exceeded")
)

// ValidateOutputName checks that name is a relative path that stays inside
// whatever directory it is joined to.
func ValidateOutputName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnsafePath)
	}
	if !filepath.IsLocal(name) {
		return fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return nil
}

// LimitReader returns a reader that fails with ErrSizeLimit once r yields
// more than n bytes. Exactly n bytes read cleanly.
func LimitReader(r io.Reader, n int64) io.Reader {
	return &limitedReader{r: r, remaining: n}
}

type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrSizeLimit
	}
	// One spare byte detects input that runs past the limit.
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	if int64(n) > l.remaining {
		l.remaining = -1
		return 0, ErrSizeLimit
	}
	l.remaining -= int64(n)
	return n, err
}
