// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps assets under a root directory and serves them from
// baseURL + "/media/".
type LocalStore struct {
	root    string
	baseURL string
}

// NewLocalStore creates root if needed.
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("media: failed to create %s: %w", root, err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload copies file into the store under a fresh key.
func (store *LocalStore) Upload(ctx context.Context, file File, kind Kind) (*Object, error) {
	if !Accepts(kind, file.Name) {
		return nil, ErrUnsupportedType
	}

	key := MakeKey(kind, file.Name)
	destination := filepath.Join(store.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return nil, fmt.Errorf("media: failed to create directory: %w", err)
	}

	source, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("media: failed to open %s: %w", file.Path, err)
	}
	defer source.Close()

	output, err := os.Create(destination)
	if err != nil {
		return nil, fmt.Errorf("media: failed to create %s: %w", destination, err)
	}

	if _, err := io.Copy(output, contextReader{ctx: ctx, reader: source}); err != nil {
		output.Close()
		os.Remove(destination)
		return nil, fmt.Errorf("media: failed to write %s: %w", key, err)
	}

	if err := output.Close(); err != nil {
		os.Remove(destination)
		return nil, fmt.Errorf("media: failed to close %s: %w", key, err)
	}

	return &Object{Key: key, URL: store.baseURL + "/media/" + key}, nil
}

// Delete removes the object. A missing object is ignored.
func (store *LocalStore) Delete(_ context.Context, key string) error {
	if !validKey(key) {
		return fmt.Errorf("media: invalid key %q", key)
	}

	err := os.Remove(filepath.Join(store.root, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("media: failed to delete %s: %w", key, err)
	}
	return nil
}

// Handler serves stored files. Mount it at /media/.
func (store *LocalStore) Handler() http.Handler {
	return http.StripPrefix("/media/", http.FileServer(http.Dir(store.root)))
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (r contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.reader.Read(p)
}
