// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
)

// UploadsURLPrefix is the URL path local uploads are served under.
const UploadsURLPrefix = "/uploads/"

// localFileStorage writes uploads into a directory on disk. Files are served
// back by the HTTP layer under [UploadsURLPrefix].
type localFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalFileStorage constructs a [FileStorage] rooted at dir, creating the
// directory if needed.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local file storage")
	return &localFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes r to dir/name and returns "/uploads/<name>". The file is
// written to a temporary name first and renamed, so readers never see a
// partial upload.
func (s *localFileStorage) Save(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: invalid file name %q", ErrFileNotSaved, name)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotSaved, err)
	}
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmp.Name())
	}()

	if _, err = io.Copy(tmp, &ctxReader{ctx: ctx, r: r}); err != nil {
		_ = tmp.Close()
		log.Err(err).Str("func", "*localFileStorage.Save").Msg("error writing upload")
		return "", fmt.Errorf("%w: %w", ErrFileNotSaved, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotSaved, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotSaved, err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotSaved, err)
	}

	return path.Join(UploadsURLPrefix, name), nil
}

// ctxReader stops copying once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
