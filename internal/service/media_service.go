package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"masjid/internal/config"
	"masjid/internal/domain"
	"masjid/internal/port"
)

const galleryPrefix = "gallery/"

// Gallery keys are random, so an object never changes once written.
const galleryCacheControl = "public, max-age=31536000, immutable"

// MediaUploadInput is the DTO for gallery uploads.
type MediaUploadInput struct {
	File     io.ReadSeeker
	FileName string
	Size     int64
	Title    string
}

// MediaUpload describes a stored gallery object. URL is what gets pasted
// into the gallery sheet; PresignedURL allows an immediate preview.
type MediaUpload struct {
	Key          string           `json:"key"`
	Type         domain.MediaType `json:"type"`
	ContentType  string           `json:"contentType"`
	Size         int64            `json:"size"`
	Title        string           `json:"title,omitempty"`
	URL          string           `json:"url"`
	PresignedURL string           `json:"presignedUrl,omitempty"`
}

// MediaService defines the gallery upload contract.
type MediaService interface {
	Upload(ctx context.Context, input MediaUploadInput) (*MediaUpload, error)
	Delete(ctx context.Context, key string) error
}

type mediaService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
	log     *zap.Logger
}

// NewMediaService creates a new MediaService implementation.
func NewMediaService(storage port.ObjectStorage, cfg *config.S3Config, log *zap.Logger) MediaService {
	if log == nil {
		log = zap.NewNop()
	}
	return &mediaService{storage: storage, cfg: cfg, log: log.Named("media")}
}

func (s *mediaService) Upload(ctx context.Context, input MediaUploadInput) (*MediaUpload, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the first 512 bytes rather than trusting the client's header.
	buf := make([]byte, 512)
	n, err := io.ReadFull(input.File, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := strings.TrimSpace(strings.SplitN(http.DetectContentType(buf[:n]), ";", 2)[0])
	mediaType, ok := domain.AllowedMediaContentTypes[contentType]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	key := galleryPrefix + uuid.New().String() + "." + domain.MediaExtensions[contentType]
	s.log.Info("uploading gallery media",
		zap.String("key", key),
		zap.String("original_name", input.FileName),
		zap.String("content_type", contentType),
		zap.Int64("size", input.Size),
	)

	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:       s.cfg.Bucket,
		Key:          key,
		Body:         input.File,
		ContentType:  contentType,
		CacheControl: galleryCacheControl,
		Size:         input.Size,
	})
	if err != nil {
		s.log.Error("gallery upload failed", zap.String("key", key), zap.Error(err))
		return nil, domain.ErrUploadFailed
	}

	upload := &MediaUpload{
		Key:         key,
		Type:        mediaType,
		ContentType: contentType,
		Size:        input.Size,
		Title:       strings.TrimSpace(input.Title),
		URL:         out.Location,
	}
	presigned, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		s.log.Warn("presigning gallery media failed", zap.String("key", key), zap.Error(err))
	} else {
		upload.PresignedURL = presigned
	}
	return upload, nil
}

// Delete removes a gallery object. Keys outside the gallery prefix are
// rejected so the endpoint cannot reach other objects in the bucket.
func (s *mediaService) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	if !strings.HasPrefix(key, galleryPrefix) || strings.Contains(key, "..") || len(key) == len(galleryPrefix) {
		return domain.ErrNotFound
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, key); err != nil {
		return fmt.Errorf("media.Delete: %w", err)
	}
	s.log.Info("deleted gallery media", zap.String("key", key))
	return nil
}
