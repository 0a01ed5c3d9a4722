package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
)

const (
	uploadFormField = "image"

	// multipartOverhead is the allowance for boundaries and part headers on
	// top of the file size limit.
	multipartOverhead = 1 << 20
)

// upload stores the multipart file sent in the "image" field.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	limit := h.files.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	name, contentType, data, err := readUploadPart(r, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	uploaded, err := h.services.UploadService.Upload(r.Context(), name, contentType, bytes.NewReader(data))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, uploaded, http.StatusOK)
}

// readUploadPart finds the first file part named "image" and reads at most
// limit bytes of it.
func readUploadPart(r *http.Request, limit int64) (string, string, []byte, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %w", service.ErrNoFileUploaded, err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return "", "", nil, service.ErrNoFileUploaded
		}
		if err != nil {
			// an oversized body surfaces as *http.MaxBytesError and maps to 413
			return "", "", nil, fmt.Errorf("%w: %w", service.ErrNoFileUploaded, err)
		}

		if part.FormName() != uploadFormField || part.FileName() == "" {
			part.Close()
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, limit+1))
		part.Close()
		if err != nil {
			return "", "", nil, fmt.Errorf("%w: %w", service.ErrNoFileUploaded, err)
		}
		if int64(len(data)) > limit {
			return "", "", nil, service.ErrPayloadTooLarge
		}

		return part.FileName(), part.Header.Get("Content-Type"), data, nil
	}
}
