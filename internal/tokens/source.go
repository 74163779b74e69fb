package tokens

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/afero"

	"github.com/jmylchreest/wex/internal/fetch"
)

// IsRemote reports whether source names an http(s) URL rather than a file.
func IsRemote(source string) bool {
	return fetch.IsURL(source)
}

// LoadSource reads a token document from a file in fsys or, when source is
// an http(s) URL, from the network. The format of a remote document comes
// from the extension of the URL path and defaults to JSON.
func LoadSource(ctx context.Context, fsys afero.Fs, source string) (*Document, error) {
	if !IsRemote(source) {
		return Load(fsys, source)
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("invalid token source URL: %w", err)
	}
	format, err := FormatFromPath(u.Path)
	if err != nil {
		return nil, err
	}

	data, err := fetch.Fetch(ctx, source, fetch.Options{MaxSize: MaxSourceSize})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
	}

	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	return doc, nil
}
