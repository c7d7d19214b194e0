package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
)

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
}

func NewMinIOClient(cfg MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}
	return client, nil
}

// ObjectStorage stores blobs in MinIO. A stored object is addressed by an
// opaque reference of the form "bucket/object" that is only meaningful to
// this type.
type ObjectStorage struct {
	client *minio.Client

	mu      sync.Mutex
	buckets map[string]bool
}

var _ issuance.BlobStore = (*ObjectStorage)(nil)

func NewObjectStorage(client *minio.Client) *ObjectStorage {
	return &ObjectStorage{client: client, buckets: map[string]bool{}}
}

func (s *ObjectStorage) ensureBucket(ctx context.Context, bucketName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucketName] {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		slog.Info("ObjectStorage created bucket", "bucket", bucketName)
	}
	s.buckets[bucketName] = true
	return nil
}

func (s *ObjectStorage) Put(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) (string, error) {
	if err := s.ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	_, err := s.client.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		slog.Error("ObjectStorage Put", "error", err, "bucket", bucketName, "object", objectName)
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return JoinObjectRef(bucketName, objectName), nil
}

func (s *ObjectStorage) Get(ctx context.Context, ref string) ([]byte, error) {
	bucketName, objectName, err := SplitObjectRef(ref)
	if err != nil {
		return nil, err
	}

	object, err := s.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		slog.Error("ObjectStorage Get", "error", err, "bucket", bucketName, "object", objectName)
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *ObjectStorage) Remove(ctx context.Context, ref string) error {
	bucketName, objectName, err := SplitObjectRef(ref)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		slog.Error("ObjectStorage Remove", "error", err, "bucket", bucketName, "object", objectName)
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ListOlder returns references of objects under prefix last modified
// before the given time.
func (s *ObjectStorage) ListOlder(ctx context.Context, bucketName string, prefix string, before time.Time) ([]string, error) {
	var refs []string
	for object := range s.client.ListObjects(ctx, bucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		if object.LastModified.Before(before) {
			refs = append(refs, JoinObjectRef(bucketName, object.Key))
		}
	}
	return refs, nil
}

func JoinObjectRef(bucketName string, objectName string) string {
	return bucketName + "/" + objectName
}

// SplitObjectRef is the inverse of JoinObjectRef.
func SplitObjectRef(ref string) (bucketName string, objectName string, err error) {
	bucketName, objectName, ok := strings.Cut(ref, "/")
	if !ok || bucketName == "" || objectName == "" {
		return "", "", fmt.Errorf("invalid object reference %q", ref)
	}
	return bucketName, objectName, nil
}
