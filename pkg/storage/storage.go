package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const placeholderURL = "/placeholder.svg?height=400&width=600"

// UploadResult carries the stored location of an uploaded image. PublicID
// values prefixed with "local_" or "upload_failed" mark placeholder results
// that have no backing object.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Config holds the object storage credentials. Any empty required field
// leaves the uploader in placeholder mode.
type Config struct {
	Bucket          string
	AccessKeyID     string
	AccessKeySecret string
	Endpoint        string
	CDNBaseURL      string
}

// Uploader stores images in an S3-compatible bucket. A nil or unconfigured
// uploader still serves requests by handing out placeholder URLs, so image
// handling never blocks the rest of the app.
type Uploader struct {
	client     *s3.Client
	bucket     string
	cdnBaseURL string
}

// NewUploader builds an uploader from the given credentials. Missing
// credentials are not an error; the uploader falls back to placeholders.
func NewUploader(cfg Config) *Uploader {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Endpoint == "" {
		log.Println("Object storage not configured, image uploads will use placeholders")
		return &Uploader{}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.AccessKeySecret, "",
		)),
	)
	if err != nil {
		log.Printf("Object storage init failed, falling back to placeholders: %v", err)
		return &Uploader{}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
	})

	cdn := cfg.CDNBaseURL
	if cdn == "" {
		cdn = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &Uploader{client: client, bucket: cfg.Bucket, cdnBaseURL: cdn}
}

// Configured reports whether a real bucket backs this uploader.
func (u *Uploader) Configured() bool {
	return u != nil && u.client != nil
}

// Upload stores one image and returns its public URL. When no bucket is
// configured, or the put fails, it returns a placeholder result instead of
// an error so callers can always persist something displayable.
func (u *Uploader) Upload(ctx context.Context, fileHeader *multipart.FileHeader) UploadResult {
	if !u.Configured() {
		return UploadResult{
			URL:      placeholderURL,
			PublicID: "local_" + uuid.NewString(),
		}
	}

	key := objectKey(fileHeader.Filename)
	if err := u.put(ctx, fileHeader, key); err != nil {
		log.Printf("Image upload failed for %q: %v", fileHeader.Filename, err)
		return UploadResult{
			URL:      placeholderURL,
			PublicID: "upload_failed",
		}
	}

	return UploadResult{
		URL:      fmt.Sprintf("%s/%s", u.cdnBaseURL, key),
		PublicID: key,
	}
}

// Delete removes a stored object. Placeholder ids are accepted and ignored
// so clients can delete whatever id they were handed.
func (u *Uploader) Delete(ctx context.Context, publicID string) error {
	if strings.HasPrefix(publicID, "local_") || publicID == "upload_failed" {
		return nil
	}
	if !u.Configured() {
		return nil
	}

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", publicID, err)
	}
	return nil
}

func (u *Uploader) put(ctx context.Context, fileHeader *multipart.FileHeader, key string) error {
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        buf,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func objectKey(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	name := slug.Make(base)
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("images/%s-%s%s", name, uuid.NewString(), strings.ToLower(ext))
}
