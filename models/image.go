package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ImageSource tells where an image reference came from.
type ImageSource string

const (
	// ImageSourceUpload marks an object uploaded during the current session.
	ImageSourceUpload ImageSource = "upload"
	// ImageSourceURL marks an external URL entered by the user.
	ImageSourceURL ImageSource = "url"
)

// ImageRef points at one image. Same-session uploads carry the storage key and
// the upload id assigned when the file was accepted; external URLs carry only
// the address. Everything downstream treats both shapes uniformly.
type ImageRef struct {
	Source   ImageSource `json:"source"`
	URL      string      `json:"url"`
	Key      string      `json:"key,omitempty"`
	UploadID string      `json:"uploadId,omitempty"`
}

// NewUploadRef builds a reference to a same-session upload from its storage
// key and public URL, minting a fresh upload id.
func NewUploadRef(key, publicURL string) ImageRef {
	return ImageRef{
		Source:   ImageSourceUpload,
		URL:      publicURL,
		Key:      key,
		UploadID: uuid.New().String(),
	}
}

// NewURLRef validates rawURL and wraps it. Only absolute http(s) URLs are
// accepted.
func NewURLRef(rawURL string) (ImageRef, error) {
	trimmed := strings.TrimSpace(rawURL)
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ImageRef{}, fmt.Errorf("invalid image url %q: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ImageRef{}, fmt.Errorf("invalid image url %q: scheme must be http or https", rawURL)
	}
	if parsed.Host == "" {
		return ImageRef{}, fmt.Errorf("invalid image url %q: missing host", rawURL)
	}
	return ImageRef{Source: ImageSourceURL, URL: trimmed}, nil
}

// IsZero reports whether the reference points at nothing.
func (r ImageRef) IsZero() bool {
	return r.URL == "" && r.Key == ""
}
