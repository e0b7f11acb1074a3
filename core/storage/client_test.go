package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Endpoint: "minio.internal:9000"}.Enabled())
}

func TestNewClient(t *testing.T) {
	t.Run("Strips Scheme", func(t *testing.T) {
		client, err := NewClient(Config{Endpoint: "https://minio.internal:9000"})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid Endpoint", func(t *testing.T) {
		_, err := NewClient(Config{Endpoint: "http://%%bad"})
		assert.Error(t, err)
	})
}
