package publisher

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Publish uploads each file under <prefix>/<basename>. The first failed upload stops the step.
func (p *implPublisher) Publish(ctx context.Context, files []string) ([]string, error) {
	uris := make([]string, 0, len(files))

	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return uris, fmt.Errorf("read %s: %w", file, err)
		}

		key := p.Key(file)
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType(file)),
		})
		if err != nil {
			p.logger.Error(ctx, "Upload failed for %s: %v", file, err)
			return uris, fmt.Errorf("upload %s: %w", file, err)
		}

		uri := fmt.Sprintf("s3://%s/%s", p.bucket, key)
		p.logger.Info(ctx, "[%d/%d] Uploaded %s -> %s", i+1, len(files), file, uri)
		uris = append(uris, uri)
	}

	return uris, nil
}

// Key is the object key for a local file
func (p *implPublisher) Key(file string) string {
	if p.prefix == "" {
		return filepath.Base(file)
	}
	return path.Join(p.prefix, filepath.Base(file))
}

func contentType(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		return "audio/mpeg"
	case ".json":
		return "application/json"
	}
	if t := mime.TypeByExtension(filepath.Ext(file)); t != "" {
		return t
	}
	return "application/octet-stream"
}
