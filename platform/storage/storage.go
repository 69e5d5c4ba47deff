package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go_doc_rpc/config"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/utils"

	"github.com/minio/minio-go/v7"
)

var ErrObjectExists = fmt.Errorf("object already exists")

type Service struct {
	Client      *minio.Client
	Bucket      string
	Region      string
	StorageType string
}

// InitStorageService builds a minio or s3 client; the bucket name is the configured database.
func InitStorageService(ctx context.Context, cfg *config.DocStoreConfig) (*Service, error) {
	var minioClient *minio.Client
	var err error

	switch cfg.Backend {
	case "minio":
		minioClient, err = utils.CreateMinIOClient(cfg)
	case "s3":
		minioClient, err = utils.CreateS3Client(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %q", cfg.Backend)
	}
	if err != nil {
		logging.Logger.Error("fail InitStorageService", "error", err)
		return nil, err
	}
	ss := &Service{
		Client:      minioClient,
		Bucket:      bucketName(cfg.Database),
		Region:      cfg.Region,
		StorageType: cfg.Backend,
	}
	if err := ss.EnsureBucketExists(ctx); err != nil {
		return nil, err
	}
	logging.Logger.Info("storage service initialized",
		"type", cfg.Backend,
		"bucket", ss.Bucket,
		"region", cfg.Region,
	)
	return ss, nil
}

// bucket names must be lowercase
func bucketName(database string) string {
	name := strings.ToLower(strings.TrimSpace(database))
	if name == "" {
		return "documents"
	}
	return name
}

func (ss *Service) EnsureBucketExists(ctx context.Context) error {
	exists, err := ss.Client.BucketExists(ctx, ss.Bucket)
	if err != nil {
		logging.Logger.Error("fail EnsureBucketExists", "error", err)
		return err
	}
	if exists {
		return nil
	}
	err = ss.Client.MakeBucket(ctx, ss.Bucket, minio.MakeBucketOptions{Region: ss.Region})
	if err != nil {
		if ss.StorageType == "s3" {
			logging.Logger.Warn("could not create S3 bucket (might exist or no permission)",
				"bucket", ss.Bucket, "error", err)
			return nil
		}
		logging.Logger.Error("fail EnsureBucketExists", "error", err)
		return err
	}
	logging.Logger.Info("bucket created", "bucket", ss.Bucket)
	return nil
}

func (ss *Service) Ping(ctx context.Context) error {
	_, err := ss.Client.BucketExists(ctx, ss.Bucket)
	return err
}

// PutJSON writes body under key. With overwrite false the write is conditional on the key
// not existing and ErrObjectExists is returned otherwise.
func (ss *Service) PutJSON(ctx context.Context, key string, body []byte, overwrite bool) error {
	opts := minio.PutObjectOptions{ContentType: "application/json"}
	if !overwrite {
		opts.SetMatchETagExcept("*")
	}
	_, err := ss.Client.PutObject(ctx, ss.Bucket, key, bytes.NewReader(body), int64(len(body)), opts)
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.StatusCode == http.StatusPreconditionFailed {
			return ErrObjectExists
		}
		return err
	}
	return nil
}

// GetJSON returns the object body, or (nil, nil) when the key does not exist.
func (ss *Service) GetJSON(ctx context.Context, key string) ([]byte, error) {
	obj, err := ss.Client.GetObject(ctx, ss.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// ListKeys returns every object key in the bucket in lexical order.
func (ss *Service) ListKeys(ctx context.Context) ([]string, error) {
	var keys []string
	for obj := range ss.Client.ListObjects(ctx, ss.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (ss *Service) CountObjects(ctx context.Context) (int64, error) {
	var n int64
	for obj := range ss.Client.ListObjects(ctx, ss.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return n, obj.Err
		}
		n++
	}
	return n, nil
}
