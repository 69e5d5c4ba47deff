package utils

import (
	"strconv"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go_doc_rpc/config"
)

func CreateMinIOClient(cfg *config.DocStoreConfig) (*minio.Client, error) {
	return minio.New(cfg.Host+":"+strconv.Itoa(cfg.Port), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Username, cfg.Password, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
}

func CreateS3Client(cfg *config.DocStoreConfig) (*minio.Client, error) {
	return minio.New("s3.amazonaws.com", &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Username, cfg.Password, ""),
		Secure: true,
		Region: cfg.Region,
	})
}
