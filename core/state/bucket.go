package state

import (
	"context"
	"fmt"
	"io"

	"sentinel/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSource loads a state document from S3-compatible object storage.
// Gold standards are published to a bucket by the network team, so the
// desired side of a production audit usually reads from here.
type BucketSource struct {
	Client storage.Client
	Bucket string
	Object string
	// Format overrides codec detection; FormatAuto uses the object extension.
	Format Format
}

// Load implements Source.
func (s *BucketSource) Load(ctx context.Context) (*Node, error) {
	origin := s.Bucket + "/" + s.Object

	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return nil, &LoadError{Origin: origin, Err: err}
	}
	if !exists {
		return nil, &LoadError{Origin: origin, Err: fmt.Errorf("bucket %q does not exist", s.Bucket)}
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, &LoadError{Origin: origin, Err: err}
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, &LoadError{Origin: origin, Err: err}
	}

	node, err := Decode(data, s.Format, s.Object)
	if err != nil {
		return nil, &LoadError{Origin: origin, Err: err}
	}
	return node, nil
}
