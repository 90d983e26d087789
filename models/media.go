package models

import "io"

// Media describes a profile image resource held by the media store.
type Media struct {
	// SecureURL is the publicly fetchable HTTPS URL of the object.
	SecureURL string `json:"secureUrl"`

	// PublicID is the stable storage handle used to destroy the object.
	PublicID string `json:"publicId"`
}

// MediaFile is an uploaded file waiting to be stored.
type MediaFile struct {
	// Content streams the file body.
	Content io.Reader

	// FileName is the client supplied file name; only its extension is kept.
	FileName string

	// Size is the body length in bytes.
	Size int64

	// ContentType is the MIME type declared by the client.
	ContentType string
}
