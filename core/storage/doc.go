// Package storage provides access to S3-compatible object storage.
//
// It wraps the MinIO Go client behind the small Client interface the service
// uses: reference tables are read with GetObject, and the integrity checks use
// BucketExists, ListObjects and PutObject. The interface is mocked in
// core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	r, err := client.GetObject(ctx, cfg.Storage.Bucket, "reference/base_prices.json", minio.GetObjectOptions{})
package storage
