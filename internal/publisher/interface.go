package publisher

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Publisher uploads the run's artifacts and returns their s3:// URIs.
type Publisher interface {
	Publish(ctx context.Context, files []string) ([]string, error)
}

// ObjectPutter is the slice of the S3 client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}
