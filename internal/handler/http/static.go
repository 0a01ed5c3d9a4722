// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// frontend serves the static frontend bundle. GET and HEAD requests that
// match no file fall back to index.html when they look like a client-side
// route: not under /api or /uploads, and the last path segment has no
// extension. Everything else is answered with a JSON 404.
func (h *Handler) frontend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.apiNotFound(w, r)
		return
	}

	name := path.Clean("/" + r.URL.Path)
	if file, ok := regularFile(h.files.FrontendDir, name); ok && serveFile(w, r, file) {
		return
	}

	if isSPARoute(name) {
		if index, ok := regularFile(h.files.FrontendDir, "/"+indexFile); ok && serveFile(w, r, index) {
			return
		}
	}

	h.apiNotFound(w, r)
}

// serveFile writes the file with conditional request and range support. It
// reports false when the file could not be opened.
func serveFile(w http.ResponseWriter, r *http.Request, file string) bool {
	f, err := os.Open(file)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

func (h *Handler) apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrNotFound)
}

// uploadsHandler serves stored uploads from the local uploads directory.
// Directory listings are never exposed.
func (h *Handler) uploadsHandler() http.Handler {
	return http.StripPrefix("/uploads/", http.FileServer(filesOnlyFS{http.Dir(h.files.UploadsDir)}))
}

func isSPARoute(name string) bool {
	if name == "/api" || strings.HasPrefix(name, "/api/") ||
		name == "/uploads" || strings.HasPrefix(name, "/uploads/") {
		return false
	}
	return path.Ext(path.Base(name)) == ""
}

// regularFile resolves the slash-separated name under dir and reports
// whether it is an existing regular file.
func regularFile(dir, name string) (string, bool) {
	if dir == "" {
		return "", false
	}

	file := filepath.Join(dir, filepath.FromSlash(name))
	info, err := os.Stat(file)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return file, true
}

// filesOnlyFS hides directories from http.FileServer.
type filesOnlyFS struct {
	fs http.FileSystem
}

func (f filesOnlyFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
