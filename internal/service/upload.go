package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"hirely.app/api/internal/model"
)

const MaxUploadBytes = 5 << 20

type UploadKind string

const (
	UploadLogo       UploadKind = "logo"
	UploadAvatar     UploadKind = "avatar"
	UploadAttachment UploadKind = "attachment"
)

func (k UploadKind) Valid() bool {
	return k == UploadLogo || k == UploadAvatar || k == UploadAttachment
}

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ObjectStorage is an S3-compatible bucket.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URL(key string) string
}

type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type UploadService interface {
	Upload(ctx context.Context, p model.Principal, kind UploadKind, r io.Reader) (*UploadResult, error)
}

type uploadService struct {
	storage ObjectStorage
}

// NewUploadService accepts a nil storage; uploads then fail with ErrNotConfigured.
func NewUploadService(storage ObjectStorage) UploadService {
	return &uploadService{storage: storage}
}

func (s *uploadService) Upload(ctx context.Context, p model.Principal, kind UploadKind, r io.Reader) (*UploadResult, error) {
	if s.storage == nil {
		return nil, ErrNotConfigured
	}
	if kind == "" {
		kind = UploadAttachment
	}
	if !kind.Valid() {
		return nil, invalid("kind", "must be logo, avatar or attachment")
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return nil, invalid("file", "is empty")
	}
	if len(data) > MaxUploadBytes {
		return nil, invalid("file", "must be at most 5 MiB")
	}

	mt := mimetype.Detect(data)
	if !allowedUploadTypes[mt.String()] {
		return nil, invalid("file", fmt.Sprintf("unsupported type %s", mt.String()))
	}

	key := fmt.Sprintf("%s/%s-%d/%s%s", kind, p.Role, p.ID, uuid.NewString(), mt.Extension())
	if err := s.storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), mt.String()); err != nil {
		return nil, fmt.Errorf("storing upload: %w", err)
	}

	slog.InfoContext(ctx, "file uploaded", "key", key, "size", len(data), "content_type", mt.String())
	return &UploadResult{
		URL:         s.storage.URL(key),
		Key:         key,
		ContentType: mt.String(),
		Size:        int64(len(data)),
	}, nil
}
