package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, DefaultRankingLimit},
		{"negative falls back to default", -3, DefaultRankingLimit},
		{"in range passes through", 25, 25},
		{"maximum passes through", MaxRankingLimit, MaxRankingLimit},
		{"above maximum is capped", 500, MaxRankingLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.limit))
		})
	}
}

func TestSanitizeCharacterName(t *testing.T) {
	assert.Equal(t, "Thrall", SanitizeCharacterName("Thrall"))
	assert.Equal(t, "Gul_dan", SanitizeCharacterName("Gul'dan"))
	assert.Equal(t, "___etc_passwd", SanitizeCharacterName("../etc/passwd"))
	assert.Equal(t, "Kel_Thuzad", SanitizeCharacterName("Kel'Thuzad"))
	assert.Equal(t, "under_score-ok", SanitizeCharacterName("under_score-ok"))
}

func TestProbeCharacterImage(t *testing.T) {
	uploadsDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(uploadsDir, "characters"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(uploadsDir, "characters", "Gul_dan.png"), []byte("img"), 0o644))

	svc := NewRankingService(nil, nil, uploadsDir)

	// The stored file name uses the sanitized character name
	assert.Equal(t, "/api/uploads/characters/Gul_dan.png", svc.probeCharacterImage("Gul'dan"))
	assert.Empty(t, svc.probeCharacterImage("Thrall"))
}

func TestProbeCharacterImageExtensionOrder(t *testing.T) {
	uploadsDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(uploadsDir, "characters"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(uploadsDir, "characters", "Thrall.webp"), []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(uploadsDir, "characters", "Thrall.jpg"), []byte("img"), 0o644))

	svc := NewRankingService(nil, nil, uploadsDir)

	// .jpg is probed before .webp
	assert.Equal(t, "/api/uploads/characters/Thrall.jpg", svc.probeCharacterImage("Thrall"))
}
