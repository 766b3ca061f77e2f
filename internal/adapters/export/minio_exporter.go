package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
	"travelpins/internal/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds connection settings for an S3-compatible endpoint.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// MinioExporter writes point-in-time JSON snapshots of the pin store to a bucket.
// Snapshots are backups only; nothing reads them back into a store.
type MinioExporter struct {
	client *minio.Client
}

func NewMinioExporter(cfg MinioConfig) (*MinioExporter, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("new minio exporter: endpoint, access key and secret key are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("new minio exporter: create client: %w", err)
	}

	return &MinioExporter{client: client}, nil
}

// Export stores pins under a timestamped key and returns that key.
// The bucket is created when missing.
func (e *MinioExporter) Export(ctx context.Context, bucket string, pins []*domain.Pin, at time.Time) (string, error) {
	exists, err := e.client.BucketExists(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("export pins: check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := e.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("export pins: create bucket %q: %w", bucket, err)
		}
	}

	data, err := EncodeSnapshot(pins, at)
	if err != nil {
		return "", fmt.Errorf("export pins: %w", err)
	}

	key := SnapshotKey(at)
	_, err = e.client.PutObject(
		ctx,
		bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return "", fmt.Errorf("export pins: put object %q: %w", key, err)
	}

	log.Printf("export pins: bucket=%s key=%s count=%d", bucket, key, len(pins))
	return key, nil
}

type snapshotPin struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

type snapshot struct {
	TakenAt time.Time     `json:"taken_at"`
	Places  []snapshotPin `json:"places"`
}

// SnapshotKey names the object for a snapshot taken at at.
func SnapshotKey(at time.Time) string {
	return "snapshots/places-" + at.UTC().Format("20060102T150405Z") + ".json"
}

// EncodeSnapshot renders pins in the persisted "places" field layout.
func EncodeSnapshot(pins []*domain.Pin, at time.Time) ([]byte, error) {
	s := snapshot{
		TakenAt: at.UTC(),
		Places:  make([]snapshotPin, 0, len(pins)),
	}
	for _, p := range pins {
		s.Places = append(s.Places, snapshotPin{
			ID:        p.ID.String(),
			Title:     p.Title,
			Subtitle:  p.Note,
			Latitude:  p.Coordinates.Lat,
			Longitude: p.Coordinates.Lon,
			CreatedAt: p.CreatedAt,
		})
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
