package publish

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectPutter is the subset of the S3 client used to upload a heatmap.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Publisher struct {
	client ObjectPutter
	logger *zap.Logger
}

func NewS3Publisher(client ObjectPutter, logger *zap.Logger) *S3Publisher {
	return &S3Publisher{client: client, logger: logger}
}

// Publish uploads the file at path to bucket. An empty key uses the file's
// base name. It returns the s3:// URI of the object.
func (p *S3Publisher) Publish(ctx context.Context, path, bucket, key string) (string, error) {
	if bucket == "" {
		return "", fmt.Errorf("no bucket to publish %s to", path)
	}
	if key == "" {
		key = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open heatmap: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat heatmap: %w", err)
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(ContentType(path)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload heatmap to s3://%s/%s: %w", bucket, key, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", bucket, key)
	p.logger.Info("Heatmap published", zap.String("uri", uri), zap.Int64("bytes", info.Size()))
	return uri, nil
}

// ContentType guesses the MIME type of an image from its extension.
func ContentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}
