package testutil

import (
	"Foodgram-Backend/internal/utils/storage"
	"context"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

const (
	storageBaseURL = "https://cdn.test/"

	// PixelPNG is a 1x1 png as a data uri.
	PixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
)

// MemoryStorage keeps uploads in a map.
type MemoryStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string
}

var _ storage.AwsS3 = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Objects: map[string][]byte{}}
}

func (m *MemoryStorage) UploadFile(_ context.Context, fileName string, file *storage.File, dir string, allowType ...string) (string, error) {
	if len(allowType) > 0 && !mimetype.EqualsAny(file.ContentType, allowType...) {
		return "", storage.ErrImageTypeDenied
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := dir + "/" + fileName + file.Extension
	m.Objects[key] = file.Data
	return key, nil
}

func (m *MemoryStorage) DeleteFile(_ context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, objectKey)
	m.Deleted = append(m.Deleted, objectKey)
	return nil
}

func (m *MemoryStorage) GetPublicLinkKey(objectKey string) string {
	return storageBaseURL + objectKey
}

func (m *MemoryStorage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, storageBaseURL) {
		return ""
	}
	return strings.TrimPrefix(link, storageBaseURL)
}

func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Objects)
}
