package publisher

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nguyentantai21042004/product-narrator/internal/config"
	"github.com/nguyentantai21042004/product-narrator/internal/logger"
)

type implPublisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger logger.Logger
}

// New creates a Publisher over an existing S3 client
func New(client ObjectPutter, bucket, prefix string, log logger.Logger) Publisher {
	return &implPublisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: log,
	}
}

// NewFromConfig loads AWS settings from the default chain and builds an S3-backed Publisher
func NewFromConfig(ctx context.Context, cfg config.PublishConfig, log logger.Logger) (Publisher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return New(client, cfg.Bucket, cfg.Prefix, log), nil
}
