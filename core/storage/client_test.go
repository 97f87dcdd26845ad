package storage_test

import (
	"context"
	"fmt"
	"testing"

	"match-tracker/core/storage"
	"match-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "thumbnails",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	t.Run("AlreadyExists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "thumbnails").Return(true, nil)

		err := storage.EnsureBucket(context.Background(), client, "thumbnails", "")
		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatedWhenMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "thumbnails").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "thumbnails", minio.MakeBucketOptions{Region: "us-east-1"}).
			Return(nil)

		err := storage.EnsureBucket(context.Background(), client, "thumbnails", "us-east-1")
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("CheckFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "thumbnails").Return(false, fmt.Errorf("connection refused"))

		err := storage.EnsureBucket(context.Background(), client, "thumbnails", "")
		assert.Error(t, err)
	})
}
