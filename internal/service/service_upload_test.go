package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/mock"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticNames string

func (s staticNames) Generate() string { return string(s) }

func newTestUploadSvc(t *testing.T) (UploadService, *mock.MockFileStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)

	return NewUploadService(files, staticNames("0190a6f2-aaaa"), logger.Nop()), files
}

func TestUploadService_Upload(t *testing.T) {
	svc, files := newTestUploadSvc(t)

	files.EXPECT().Save(gomock.Any(), "0190a6f2-aaaa.png", "image/png", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, r io.Reader) (string, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "bytes", string(b))
			return "/uploads/0190a6f2-aaaa.png", nil
		},
	)

	uploaded, err := svc.Upload(context.Background(), "Photo.PNG", "image/png", strings.NewReader("bytes"))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/0190a6f2-aaaa.png", uploaded.URL)
	assert.Equal(t, "0190a6f2-aaaa.png", uploaded.Filename)
}

func TestUploadService_Upload_NoFile(t *testing.T) {
	svc, _ := newTestUploadSvc(t)

	_, err := svc.Upload(context.Background(), "a.png", "", nil)

	assert.ErrorIs(t, err, ErrNoFileUploaded)
}

func TestUploadService_Upload_StorageError(t *testing.T) {
	svc, files := newTestUploadSvc(t)

	files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.Join(store.ErrFileNotSaved, errors.New("disk full")))

	_, err := svc.Upload(context.Background(), "a.png", "", strings.NewReader("x"))

	assert.ErrorIs(t, err, store.ErrFileNotSaved)
}

func TestUploadExt(t *testing.T) {
	tests := map[string]string{
		"photo.png":        ".png",
		"photo.JPEG":       ".jpeg",
		"archive.tar.gz":   ".gz",
		"no-extension":     ".jpg",
		"":                 ".jpg",
		"trailing.":        ".jpg",
		"weird.p/n":        ".jpg",
		"evil.png;rm -rf":  ".jpg",
		"long.abcdefghijk": ".jpg",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, uploadExt(name))
		})
	}
}
