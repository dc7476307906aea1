// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// SpoolFormFile copies the multipart part named field into a temporary
// file and returns it with a cleanup func. A missing part returns
// (nil, no-op cleanup, nil). ParseMultipartForm must have run first.
func SpoolFormFile(request *http.Request, field string) (*File, func(), error) {
	noop := func() {}

	part, header, err := request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, fmt.Errorf("media: failed to read %s: %w", field, err)
	}
	defer part.Close()

	temporary, err := os.CreateTemp("", "vidtube-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return nil, noop, fmt.Errorf("media: failed to create temp file: %w", err)
	}
	cleanup := func() { os.Remove(temporary.Name()) }

	size, err := io.Copy(temporary, part)
	if closeErr := temporary.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("media: failed to spool %s: %w", field, err)
	}

	return &File{Path: temporary.Name(), Name: filepath.Base(header.Filename), Size: size}, cleanup, nil
}
