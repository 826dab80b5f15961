package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient stores listing images and profile avatars in a
// GCS bucket and returns public URLs for them.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

// UploadImage writes an image to the bucket under the given folder
// ("products" or "avatars") and returns its public URL.
func (c *CloudStorageClient) UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	filename := fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), time.Now().Format("20060102150405"))

	switch contentType {
	case "image/jpeg", "image/jpg":
		filename += ".jpg"
	case "image/png":
		filename += ".png"
	case "image/webp":
		filename += ".webp"
	default:
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}

	obj := c.client.Bucket(c.bucketName).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, filename), nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	// Expected URL format: https://storage.googleapis.com/bucket-name/file-path
	const prefix = "https://storage.googleapis.com/"
	if !strings.HasPrefix(fileURL, prefix) {
		return fmt.Errorf("invalid GCS URL format")
	}

	path := fileURL[len(prefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName {
		return fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}

	obj := c.client.Bucket(c.bucketName).Object(parts[1])
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
