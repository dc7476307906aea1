// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media stores uploaded video and image assets and reports their
public URLs.

Two [Store] implementations exist:

  - [S3Store]: any S3-compatible bucket (AWS, Cloudflare R2, MinIO).
  - [LocalStore]: a directory on disk served under /media/, for development.

Uploads always start from a local file (see [SpoolFormFile]) so that the
video can be probed for its duration before it leaves the host.
*/
package media

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Kind classifies an asset. It prefixes the object key.
type Kind string

const (
	KindVideo Kind = "videos"
	KindImage Kind = "images"
)

var (
	videoExtensions = map[string]string{
		".mp4":  "video/mp4",
		".mov":  "video/quicktime",
		".mkv":  "video/x-matroska",
		".webm": "video/webm",
		".avi":  "video/x-msvideo",
	}
	imageExtensions = map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".webp": "image/webp",
		".gif":  "image/gif",
	}
)

// ErrUnsupportedType is returned when a file extension does not match its [Kind].
var ErrUnsupportedType = errors.New("media: unsupported file type")

// File is a local file waiting to be uploaded.
type File struct {
	// Path is the absolute path of the spooled file.
	Path string
	// Name is the original client file name.
	Name string
	Size int64
}

// Object is a stored asset.
type Object struct {
	Key string
	URL string
}

// Store persists assets. Delete of a missing key is not an error.
type Store interface {
	Upload(ctx context.Context, file File, kind Kind) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// Accepts reports whether a file name has an extension allowed for kind.
func Accepts(kind Kind, name string) bool {
	_, ok := extensionsFor(kind)[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ContentType returns the MIME type for a file name, or a binary fallback.
func ContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if contentType, ok := videoExtensions[ext]; ok {
		return contentType
	}
	if contentType, ok := imageExtensions[ext]; ok {
		return contentType
	}
	return "application/octet-stream"
}

// MakeKey builds a collision-free object key: "<kind>/<uuidv7><ext>".
func MakeKey(kind Kind, name string) string {
	return string(kind) + "/" + uuid.New() + strings.ToLower(filepath.Ext(name))
}

func extensionsFor(kind Kind) map[string]string {
	switch kind {
	case KindVideo:
		return videoExtensions
	case KindImage:
		return imageExtensions
	default:
		return nil
	}
}

// validKey rejects keys that could escape the storage root.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}
	return true
}
