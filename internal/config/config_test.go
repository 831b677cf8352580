package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringMasksSensitiveFields(t *testing.T) {
	cfg := &Config{
		APIName:       "Aethelgard Community API",
		JWTSecret:     "super-secret-signing-key",
		CharactersDsn: "user:pass@tcp(localhost:3306)/characters",
		RedisPassword: "redispass",
	}

	out := cfg.String()
	assert.Contains(t, out, "Aethelgard Community API")
	assert.Contains(t, out, "sup*******")
	assert.NotContains(t, out, "super-secret-signing-key")
	assert.NotContains(t, out, "user:pass@tcp")
	assert.NotContains(t, out, "redispass")
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "*******", maskValue("ab"))
	assert.Equal(t, "abc*******", maskValue("abcdef"))
}
