package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"housenumber-audit/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Disabled(t *testing.T) {
	client, err := NewClient(Config{Endpoint: "localhost:9000"})
	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, client)
}

func TestNewClient_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		scheme   string
		host     string
	}{
		{"BareHost", "localhost:9000", false, "http", "localhost:9000"},
		{"BareHostWithSSL", "minio.internal:9000", true, "https", "minio.internal:9000"},
		{"HTTPScheme", "http://localhost:9000", false, "http", "localhost:9000"},
		{"HTTPSSchemeForcesTLS", "https://s3.amazonaws.com", false, "https", "s3.amazonaws.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(Config{
				Enabled:   true,
				Endpoint:  tt.endpoint,
				AccessKey: "key",
				SecretKey: "secret",
				UseSSL:    tt.useSSL,
				Bucket:    "housenumbers",
				Region:    "eu-central-1",
			})
			require.NoError(t, err)

			mc, ok := client.(*minioClient)
			require.True(t, ok)
			assert.Equal(t, tt.scheme, mc.EndpointURL().Scheme)
			assert.Equal(t, tt.host, mc.EndpointURL().Host)
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Config{}.Timeout())
	assert.Equal(t, 30*time.Second, Config{TimeoutSeconds: -5}.Timeout())
	assert.Equal(t, 5*time.Second, Config{TimeoutSeconds: 5}.Timeout())
}

func TestNewTransport(t *testing.T) {
	tr := newTransport(7 * time.Second)

	assert.Equal(t, 7*time.Second, tr.TLSHandshakeTimeout)
	assert.Equal(t, 7*time.Second, tr.ResponseHeaderTimeout)
	assert.NotNil(t, tr.DialContext)
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "housenumbers").Return(true, nil)

		require.NoError(t, EnsureBucket(ctx, client, "housenumbers"))
		client.AssertNotCalled(t, "MakeBucket", ctx, "housenumbers", minio.MakeBucketOptions{})
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "housenumbers").Return(false, nil)
		client.On("MakeBucket", ctx, "housenumbers", minio.MakeBucketOptions{}).Return(nil)

		require.NoError(t, EnsureBucket(ctx, client, "housenumbers"))
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "housenumbers").Return(false, errors.New("access denied"))

		err := EnsureBucket(ctx, client, "housenumbers")
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("CreateFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "housenumbers").Return(false, nil)
		client.On("MakeBucket", ctx, "housenumbers", minio.MakeBucketOptions{}).Return(errors.New("quota"))

		err := EnsureBucket(ctx, client, "housenumbers")
		assert.ErrorContains(t, err, "quota")
	})
}
