// Package storage publishes exported schedule documents to object storage.
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/gosimple/slug"
)

// ScheduleContentType is the media type of exported schedule documents.
const ScheduleContentType = "application/json"

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores objects and reports their public location.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// ScheduleKey returns the object key for a schedule name, e.g.
// "Sommer Cup 2024" -> "schedules/sommer-cup-2024.json".
func ScheduleKey(name string) string {
	s := slug.Make(strings.TrimSpace(name))
	if s == "" {
		s = "schedule"
	}
	return "schedules/" + s + ".json"
}
