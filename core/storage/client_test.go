package storage_test

import (
	"testing"
	"time"

	"admin-console/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "console",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:       "https://s3.amazonaws.com",
			AccessKey:      "testkey",
			SecretKey:      "testsecret",
			UseSSL:         true,
			Region:         "us-east-1",
			TimeoutSeconds: 5,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("InvalidEndpoint", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{Endpoint: "local host:9000"})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestConfig_Durations(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())

	assert.Zero(t, storage.Config{}.Retention())
	assert.Zero(t, storage.Config{RetentionHours: -3}.Retention())
	assert.Equal(t, 48*time.Hour, storage.Config{RetentionHours: 48}.Retention())
}
