package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Enabled   bool   `envconfig:"ENABLED" default:"false"`
	Host      string `envconfig:"HOST" default:"localhost:9000"`
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
	Bucket    string `envconfig:"BUCKET" default:"natal-charts"`
	Region    string `envconfig:"REGION" default:"us-east-1"`
	UseSSL    bool   `envconfig:"USE_SSL" default:"false"` // false для локальной разработки
	// CreateBucket создать bucket при старте, если его нет
	CreateBucket bool `envconfig:"CREATE_BUCKET" default:"true"`
}

// newMinio клиент без сетевых вызовов
func (c *Config) newMinio() (*minio.Client, error) {
	client, err := minio.New(c.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
		Region: c.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return client, nil
}

// NewClient создаёт MinIO клиент и проверяет bucket
func (c *Config) NewClient(ctx context.Context) (*minio.Client, error) {
	client, err := c.newMinio()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, c.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return client, nil
	}

	if !c.CreateBucket {
		return nil, fmt.Errorf("bucket %s does not exist", c.Bucket)
	}
	if err := client.MakeBucket(ctx, c.Bucket, minio.MakeBucketOptions{Region: c.Region}); err != nil {
		return nil, fmt.Errorf("failed to create bucket %s: %w", c.Bucket, err)
	}
	return client, nil
}
