package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfig(t *testing.T) {
	t.Run("environment overrides everything", func(t *testing.T) {
		t.Setenv("APP_PORT", "9090")
		assert.Equal(t, "9090", GetConfig("APP_PORT"))
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Setenv("JWT_TTL_MINUTES", "")
		assert.Equal(t, "1440", GetConfig("JWT_TTL_MINUTES"))
	})

	t.Run("unknown key is empty", func(t *testing.T) {
		assert.Empty(t, GetConfig("NOT_A_KEY"))
	})
}
