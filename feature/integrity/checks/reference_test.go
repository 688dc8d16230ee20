package checks

import (
	"context"
	"testing"

	"networth/core/refdata"
	"networth/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckReference(t *testing.T) {
	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(emptyListing())

		missing, err := CheckReference(context.Background(), mockClient, "assets", "reference/")
		assert.NoError(t, err)
		assert.Equal(t, refdata.Files, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)

		for _, name := range refdata.Files {
			key := "reference/" + name
			mockClient.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == key
			})).Return(listing(minio.ObjectInfo{Key: key}))
		}

		missing, err := CheckReference(context.Background(), mockClient, "assets", "reference/")
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Prefix Match Is Not Enough", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "reference/"+refdata.FileReforges
		})).Return(listing(minio.ObjectInfo{Key: "reference/" + refdata.FileReforges + ".bak"}))
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(emptyListing())

		missing, err := CheckReference(context.Background(), mockClient, "assets", "reference/")
		assert.NoError(t, err)
		assert.Contains(t, missing, refdata.FileReforges)
	})

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		_, err := CheckReference(context.Background(), mockClient, "assets", "reference/")
		assert.Error(t, err)
	})
}
