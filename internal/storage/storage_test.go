package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dukerupert/tradeline/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Put(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "receipts/u1/r1.jpg", bytes.NewReader([]byte("jpeg")), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/receipts/u1/r1.jpg", url)

	got, err := os.ReadFile(filepath.Join(dir, "receipts", "u1", "r1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(got))

	entries, err := os.ReadDir(filepath.Join(dir, "receipts", "u1"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary upload file should be removed")
}

func TestLocalStorage_PutRejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, key := range []string{"", "/etc/passwd", "../outside.txt", "receipts/../../outside.txt"} {
		t.Run(key, func(t *testing.T) {
			_, err := s.Put(context.Background(), key, bytes.NewReader(nil), "text/plain")
			var storageErr *StorageError
			require.True(t, errors.As(err, &storageErr))
			assert.Equal(t, codeInvalid, storageErr.ErrorCode())
		})
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestR2Storage_Put(t *testing.T) {
	putter := &fakePutter{}
	s := &R2Storage{client: putter, bucket: "receipts", publicURL: "https://files.example.com"}

	url, err := s.Put(context.Background(), "receipts/u1/r1.png", bytes.NewReader([]byte("png")), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.com/receipts/u1/r1.png", url)
	assert.Equal(t, "receipts", *putter.input.Bucket)
	assert.Equal(t, "image/png", *putter.input.ContentType)
	assert.Equal(t, "png", string(putter.body))
}

func TestR2Storage_PutError(t *testing.T) {
	s := &R2Storage{client: &fakePutter{err: errors.New("boom")}, bucket: "receipts"}

	_, err := s.Put(context.Background(), "k.png", bytes.NewReader(nil), "image/png")
	assert.ErrorContains(t, err, "failed to upload to R2")
}

func TestNewStorage(t *testing.T) {
	s, err := NewStorage(internal.StorageConfig{Provider: "none"})
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = NewStorage(internal.StorageConfig{Provider: "r2"})
	assert.ErrorIs(t, err, ErrR2AccountIDRequired)

	_, err = NewStorage(internal.StorageConfig{Provider: "ftp"})
	assert.Error(t, err)
}
