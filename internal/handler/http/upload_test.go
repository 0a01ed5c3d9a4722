package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/MKhiriev/go-recipe-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartBody builds a form with one file part.
func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("caption", "ignored"))
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func postUpload(t *testing.T, h *Handler, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+adminToken)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestUpload_StoresImagePart(t *testing.T) {
	h := newTestHandler(t, &service.Services{UploadService: &fakeUploadService{
		uploadFn: func(_ context.Context, originalName, _ string, r io.Reader) (models.UploadedFile, error) {
			assert.Equal(t, "cake.png", originalName)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, []byte("png-bytes"), data)
			return models.UploadedFile{URL: "/uploads/abc.png", Filename: "abc.png"}, nil
		},
	}})

	body, contentType := multipartBody(t, "image", "cake.png", []byte("png-bytes"))
	rec := postUpload(t, h, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"/uploads/abc.png","filename":"abc.png"}`, rec.Body.String())
}

func TestUpload_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		body        func(t *testing.T) (io.Reader, string)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "no image field",
			body: func(t *testing.T) (io.Reader, string) {
				return multipartBody(t, "", "", nil)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: `{"error":"No file uploaded"}`,
		},
		{
			name: "wrong field name",
			body: func(t *testing.T) (io.Reader, string) {
				return multipartBody(t, "photo", "cake.png", []byte("x"))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: `{"error":"No file uploaded"}`,
		},
		{
			name: "not multipart",
			body: func(*testing.T) (io.Reader, string) {
				return bytes.NewBufferString(`{"image":"x"}`), "application/json"
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: `{"error":"No file uploaded"}`,
		},
		{
			name: "file over 5 MiB",
			body: func(t *testing.T) (io.Reader, string) {
				return multipartBody(t, "image", "big.jpg", bytes.Repeat([]byte{'a'}, 5<<20+1))
			},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: `{"error":"Payload too large"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{UploadService: &fakeUploadService{
				uploadFn: func(context.Context, string, string, io.Reader) (models.UploadedFile, error) {
					t.Fatal("upload service must not be called")
					return models.UploadedFile{}, nil
				},
			}})

			body, contentType := tt.body(t)
			rec := postUpload(t, h, body, contentType)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantMessage, rec.Body.String())
		})
	}
}

func TestUpload_FileExactlyAtLimit(t *testing.T) {
	h := newTestHandler(t, &service.Services{UploadService: &fakeUploadService{
		uploadFn: func(_ context.Context, _, _ string, r io.Reader) (models.UploadedFile, error) {
			n, err := io.Copy(io.Discard, r)
			require.NoError(t, err)
			assert.Equal(t, int64(5<<20), n)
			return models.UploadedFile{URL: "/uploads/a.jpg", Filename: "a.jpg"}, nil
		},
	}})

	body, contentType := multipartBody(t, "image", "a.jpg", bytes.Repeat([]byte{'a'}, 5<<20))
	rec := postUpload(t, h, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
}
