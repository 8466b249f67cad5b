package genebench

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage abstracts where a benchmark workspace lives. Workspaces are
// plain directory trees, so both local filesystems and S3 prefixes work.
type Storage interface {
	// ReadFile reads a file relative to the workspace root.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes a file relative to the workspace root.
	WriteFile(path string, data []byte) error

	// Exists checks if a file exists.
	Exists(path string) (bool, error)

	// MkdirAll creates directory structure (no-op on S3).
	MkdirAll(path string) error

	// GetBasePath returns the workspace root.
	GetBasePath() string

	// IsS3 returns true for S3-backed workspaces.
	IsS3() bool
}

// NewStorage creates the appropriate storage backend from a path.
// Paths starting with s3:// get the S3 backend.
func NewStorage(path string) (Storage, error) {
	if strings.HasPrefix(path, "s3://") {
		return NewS3Storage(path)
	}
	return NewLocalStorage(path), nil
}

// LocalStorage implements Storage for the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a filesystem-backed workspace.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

func (s *LocalStorage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.basePath, path))
}

func (s *LocalStorage) WriteFile(path string, data []byte) error {
	fullPath := filepath.Join(s.basePath, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func (s *LocalStorage) Exists(path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *LocalStorage) MkdirAll(path string) error {
	return os.MkdirAll(filepath.Join(s.basePath, path), 0755)
}

func (s *LocalStorage) GetBasePath() string {
	return s.basePath
}

func (s *LocalStorage) IsS3() bool {
	return false
}

// S3Storage implements Storage for AWS S3.
type S3Storage struct {
	bucket     string
	prefix     string
	client     *s3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
	ctx        context.Context
}

// NewS3Storage creates an S3-backed workspace.
// path must be in the form s3://bucket/prefix.
func NewS3Storage(path string) (*S3Storage, error) {
	if !strings.HasPrefix(path, "s3://") {
		return nil, fmt.Errorf("invalid S3 path: %s (must start with s3://)", path)
	}

	trimmed := strings.TrimPrefix(path, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	bucket := parts[0]
	prefix := ""
	if len(parts) > 1 {
		prefix = strings.TrimSuffix(parts[1], "/")
	}

	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	return &S3Storage{
		bucket:     bucket,
		prefix:     prefix,
		client:     client,
		uploader:   manager.NewUploader(client),
		downloader: manager.NewDownloader(client),
		ctx:        ctx,
	}, nil
}

func (s *S3Storage) getFullKey(path string) string {
	if s.prefix == "" {
		return path
	}
	return s.prefix + "/" + path
}

func (s *S3Storage) ReadFile(path string) ([]byte, error) {
	key := s.getFullKey(path)

	buf := manager.NewWriteAtBuffer([]byte{})
	_, err := s.downloader.Download(s.ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", s.bucket, key, err)
	}

	return buf.Bytes(), nil
}

func (s *S3Storage) WriteFile(path string, data []byte) error {
	key := s.getFullKey(path)

	_, err := s.uploader.Upload(s.ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3://%s/%s: %w", s.bucket, key, err)
	}

	return nil
}

func (s *S3Storage) Exists(path string) (bool, error) {
	key := s.getFullKey(path)

	_, err := s.client.HeadObject(s.ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *S3Storage) MkdirAll(path string) error {
	// S3 has no directories
	return nil
}

func (s *S3Storage) GetBasePath() string {
	if s.prefix == "" {
		return fmt.Sprintf("s3://%s", s.bucket)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}

func (s *S3Storage) IsS3() bool {
	return true
}
