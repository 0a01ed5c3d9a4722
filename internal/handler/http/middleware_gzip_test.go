// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

// echo answers with the (possibly decoded) request body.
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
})

func TestGZip_CompressesWhenAccepted(t *testing.T) {
	payload := `[{"id":1,"title":"Pancakes","reviews":[]}]`

	for _, accept := range []string{"gzip", "deflate, gzip, br", "gzip;q=1.0, identity;q=0.5"} {
		t.Run(accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(payload))
			req.Header.Set("Accept-Encoding", accept)
			rec := httptest.NewRecorder()

			withGZip(echo).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
			assert.Equal(t, payload, gunzip(t, rec.Body))
		})
	}
}

func TestGZip_PlainWhenNotAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Ann"}`))
	rec := httptest.NewRecorder()

	withGZip(echo).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"name":"Ann"}`, rec.Body.String())
}

func TestGZip_DecodesRequestBody(t *testing.T) {
	for _, encoding := range []string{"gzip", "gzip, deflate"} {
		t.Run(encoding, func(t *testing.T) {
			var gotEncoding string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotEncoding = r.Header.Get("Content-Encoding")
				echo(w, r)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/recipes/1/rate", gzipBytes(t, []byte(`{"uid":"u1","rating":5}`)))
			req.Header.Set("Content-Encoding", encoding)
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			assert.Empty(t, gotEncoding)
			assert.Equal(t, `{"uid":"u1","rating":5}`, rec.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("not gzipped"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid gzip data"}`, rec.Body.String())
}

func TestGZip_WriteWithoutWriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("recipe ", 500)))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Less(t, rec.Body.Len(), 3500)
	assert.Equal(t, strings.Repeat("recipe ", 500), gunzip(t, rec.Body))
}

func TestGZip_NothingWritten(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_PooledWritersAreIndependent(t *testing.T) {
	handler := withGZip(echo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			payload := strings.Repeat(string(rune('a'+i%26)), 100+i)
			req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(payload))
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			zr, err := gzip.NewReader(rec.Body)
			if !assert.NoError(t, err) {
				return
			}
			data, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Equal(t, payload, string(data))
		}(i)
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	withCallback := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}
	withoutCallback := &wrappedReadCloser{Reader: strings.NewReader("x")}

	assert.NoError(t, withCallback.Close())
	assert.True(t, closed)
	assert.NoError(t, withoutCallback.Close())
}
