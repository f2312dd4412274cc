package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DualStorage mirrors every asset to two independent S3-compatible
// providers: Cloudflare R2 (primary) and Backblaze B2 (backup). An upload
// counts as successful when at least one side lands.
type DualStorage struct {
	primary       *minio.Client
	backup        *minio.Client
	primaryBucket string
	backupBucket  string
	primaryBase   string
	backupBase    string
}

// UploadResult records where the object ended up.
type UploadResult struct {
	ObjectKey  string `json:"object_key"`
	PrimaryURL string `json:"primary_url"`
	BackupURL  string `json:"backup_url"`
	PrimaryOK  bool   `json:"primary_ok"`
	BackupOK   bool   `json:"backup_ok"`
}

func newS3Client(endpoint, keyID, secret string) (*minio.Client, error) {
	// Plain-http endpoints (local minio, tests) keep their scheme meaning.
	secure := !strings.HasPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(keyID, secret, ""),
		Secure: secure,
	})
}

// NewFromEnv wires both providers from R2_* and B2_* environment
// variables. Public URLs are served from the configured public base of
// each bucket, not the API endpoint.
func NewFromEnv() (*DualStorage, error) {
	primary, err := newS3Client(os.Getenv("R2_ENDPOINT"), os.Getenv("R2_ACCESS_KEY_ID"), os.Getenv("R2_SECRET_ACCESS_KEY"))
	if err != nil {
		return nil, fmt.Errorf("could not create R2 client: %w", err)
	}

	backup, err := newS3Client(os.Getenv("B2_ENDPOINT"), os.Getenv("B2_KEY_ID"), os.Getenv("B2_APPLICATION_KEY"))
	if err != nil {
		return nil, fmt.Errorf("could not create B2 client: %w", err)
	}

	return &DualStorage{
		primary:       primary,
		backup:        backup,
		primaryBucket: os.Getenv("R2_BUCKET"),
		backupBucket:  os.Getenv("B2_BUCKET"),
		primaryBase:   strings.TrimSuffix(os.Getenv("R2_PUBLIC_BASE_URL"), "/"),
		backupBase:    strings.TrimSuffix(os.Getenv("B2_PUBLIC_BASE_URL"), "/"),
	}, nil
}

// Upload pushes the object to both providers. Both failing is an error;
// a single-side failure is logged and reflected in the result.
func (d *DualStorage) Upload(key string, data []byte, contentType string) (*UploadResult, error) {
	result := &UploadResult{ObjectKey: key}
	opts := minio.PutObjectOptions{ContentType: contentType}

	_, primaryErr := d.primary.PutObject(context.Background(), d.primaryBucket, key,
		bytes.NewReader(data), int64(len(data)), opts)
	if primaryErr != nil {
		log.Printf("Primary upload failed for %s: %v", key, primaryErr)
	} else {
		result.PrimaryOK = true
		result.PrimaryURL = d.primaryBase + "/" + key
	}

	_, backupErr := d.backup.PutObject(context.Background(), d.backupBucket, key,
		bytes.NewReader(data), int64(len(data)), opts)
	if backupErr != nil {
		log.Printf("Backup upload failed for %s: %v", key, backupErr)
	} else {
		result.BackupOK = true
		result.BackupURL = d.backupBase + "/" + key
	}

	if !result.PrimaryOK && !result.BackupOK {
		return nil, fmt.Errorf("both uploads failed for %s: primary: %v, backup: %v", key, primaryErr, backupErr)
	}

	return result, nil
}

var manager *DualStorage

// Init builds the package-level manager from the environment.
func Init() {
	var err error
	manager, err = NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize dual storage: %v", err)
	}
}

func Get() *DualStorage {
	return manager
}
