package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"masjid/internal/config"
	"masjid/internal/domain"
	"masjid/internal/port"
	"masjid/internal/service"
	"masjid/mocks"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func testS3Config() *config.S3Config {
	return &config.S3Config{Bucket: "masjid-media", MaxFileSizeMB: 1, PresignExpiry: 600}
}

func TestMediaService_Upload_PNG(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "masjid-media" &&
			strings.HasPrefix(in.Key, "gallery/") &&
			strings.HasSuffix(in.Key, ".png") &&
			in.ContentType == "image/png" &&
			strings.Contains(in.CacheControl, "immutable")
	})).Return(&port.UploadOutput{Location: "https://masjid-media.s3.amazonaws.com/gallery/x.png"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "masjid-media", mock.Anything, int64(600)).Return("https://signed", nil)
	svc := service.NewMediaService(storage, testS3Config(), nil)

	out, err := svc.Upload(context.Background(), service.MediaUploadInput{
		File:     bytes.NewReader(pngHeader),
		FileName: "idul-fitri.png",
		Size:     int64(len(pngHeader)),
		Title:    " Idul Fitri ",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MediaImage, out.Type)
	assert.Equal(t, "Idul Fitri", out.Title)
	assert.Equal(t, "https://signed", out.PresignedURL)
	assert.Contains(t, out.URL, "gallery/")
	storage.AssertExpectations(t)
}

func TestMediaService_Upload_RejectsUnsupportedType(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewMediaService(storage, testS3Config(), nil)

	_, err := svc.Upload(context.Background(), service.MediaUploadInput{
		File: strings.NewReader("%PDF-1.7 not an image"), FileName: "x.png", Size: 20,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestMediaService_Upload_TooLarge(t *testing.T) {
	svc := service.NewMediaService(new(mocks.MockObjectStorage), testS3Config(), nil)

	_, err := svc.Upload(context.Background(), service.MediaUploadInput{
		File: bytes.NewReader(pngHeader), Size: 2 * 1024 * 1024,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestMediaService_Upload_StorageFailure(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	svc := service.NewMediaService(storage, testS3Config(), nil)

	_, err := svc.Upload(context.Background(), service.MediaUploadInput{File: bytes.NewReader(pngHeader), Size: 10})

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestMediaService_Upload_PresignFailureStillSucceeds(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{Location: "https://loc"}, nil)
	storage.On("GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("no creds"))
	svc := service.NewMediaService(storage, testS3Config(), nil)

	out, err := svc.Upload(context.Background(), service.MediaUploadInput{File: bytes.NewReader(pngHeader), Size: 10})

	require.NoError(t, err)
	assert.Empty(t, out.PresignedURL)
	assert.Equal(t, "https://loc", out.URL)
}

func TestMediaService_Delete(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Delete", mock.Anything, "masjid-media", "gallery/abc.png").Return(nil)
	svc := service.NewMediaService(storage, testS3Config(), nil)

	require.NoError(t, svc.Delete(context.Background(), "/gallery/abc.png"))
	storage.AssertExpectations(t)
}

func TestMediaService_Delete_OutsideGallery(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewMediaService(storage, testS3Config(), nil)

	for _, key := range []string{"backups/db.sql", "gallery/../secret", "gallery/"} {
		assert.ErrorIs(t, svc.Delete(context.Background(), key), domain.ErrNotFound, key)
	}
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
