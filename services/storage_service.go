// services/storage_service.go
package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// DocumentStore persists uploaded documents and serves them back by public URL
type DocumentStore interface {
	Upload(bucket, key string, reader io.Reader, size int64) (string, error)
	Remove(bucket string, keys []string) error
}

// DiskDocumentStore stores documents on the local filesystem. Buckets are
// directories created lazily on first use; repeated creation is idempotent,
// so concurrent first uploads to a cold bucket are safe.
type DiskDocumentStore struct {
	root    string
	baseURL string
}

// NewDiskDocumentStore creates a document store rooted at dir, serving
// public URLs under baseURL (e.g. "/uploads")
func NewDiskDocumentStore(root, baseURL string) *DiskDocumentStore {
	return &DiskDocumentStore{root: root, baseURL: baseURL}
}

// Upload writes one document under bucket/key and returns its public URL.
// Files over the per-file ceiling are rejected.
func (s *DiskDocumentStore) Upload(bucket, key string, reader io.Reader, size int64) (string, error) {
	if size > utils.MaxDocumentSize {
		return "", fmt.Errorf("file exceeds the %dMB limit", utils.MaxDocumentSize/(1024*1024))
	}

	fullPath := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create bucket directory: %v", err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return s.baseURL + "/" + bucket + "/" + key, nil
}

// Remove deletes the given keys from a bucket. Missing objects are not
// an error; the row is the source of truth for which keys exist.
func (s *DiskDocumentStore) Remove(bucket string, keys []string) error {
	for _, key := range keys {
		fullPath := filepath.Join(s.root, bucket, filepath.FromSlash(key))
		if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove document %s: %v", key, err)
		}
	}
	return nil
}

// uploadDocuments uploads a batch of attachments best-effort: a file that
// fails to upload is logged and skipped, it never aborts the batch. The
// returned URL and key slices are parallel and gap-free.
func uploadDocuments(store DocumentStore, bucket string, files []models.DocumentFile, keyFor func(index int, name string) string) ([]string, []string) {
	var urls, keys []string
	for i, file := range files {
		key := keyFor(i, file.Name)
		url, err := store.Upload(bucket, key, file.Reader, file.Size)
		if err != nil {
			log.Printf("Failed to upload document %s: %v", file.Name, err)
			continue
		}
		urls = append(urls, url)
		keys = append(keys, key)
	}
	return urls, keys
}

// batchDocumentKey names a document uploaded at creation time
func batchDocumentKey(index int, name string) string {
	return utils.GenerateDocumentKey(time.Now().UnixMilli(), index, name)
}
