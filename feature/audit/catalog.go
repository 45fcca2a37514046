package audit

import (
	"context"
	"fmt"
	"path"

	"sentinel/core/storage"

	"github.com/minio/minio-go/v7"
)

// Catalog lists the state documents published to the storage bucket, so
// operators can see which gold standards and snapshots are available.
type Catalog struct {
	Client storage.Client
	Bucket string
	// Prefix narrows the listing; empty lists the whole bucket.
	Prefix string
}

// List returns the object keys under the catalog prefix.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	exists, err := c.Client.BucketExists(ctx, c.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", c.Bucket)
	}

	keys := make([]string, 0)
	for obj := range c.Client.ListObjects(ctx, c.Bucket, minio.ListObjectsOptions{
		Prefix:    c.Prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// catalogPrefix derives the listing prefix from a configured object key,
// so "gold/gold_standard.yaml" lists everything under "gold/".
func catalogPrefix(object string) string {
	dir := path.Dir(object)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir + "/"
}
