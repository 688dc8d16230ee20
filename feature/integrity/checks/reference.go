package checks

import (
	"context"

	"networth/core/refdata"
	"networth/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckReference returns the reference tables missing under prefix.
func CheckReference(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	if err := ensureBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	missing := []string{}
	for _, name := range refdata.Files {
		key := prefix + name
		opts := minio.ListObjectsOptions{
			Prefix:  key,
			MaxKeys: 1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil && obj.Key == key
			break
		}
		if !found {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
