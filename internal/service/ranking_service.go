// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
)

// MaxRankingLimit bounds the ranking query so a caller cannot force an
// unbounded scan of the characters table
const MaxRankingLimit = 50

// DefaultRankingLimit is used when the caller supplies no limit
const DefaultRankingLimit = 10

const (
	rankingCacheTTL   = 5 * time.Minute
	redisTimeout      = 3 * time.Second
	charImagesSubdir  = "characters"
	charImagesBaseURL = "/api/uploads/characters/"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// RankingService projects ranked character views from the external
// characters database, enriched with locally uploaded portraits and cached
// in Redis for a short window
type RankingService struct {
	characters  *repository.CharacterRepository
	redisClient *redis.Client
	uploadsDir  string
}

// NewRankingService creates a new ranking service. redisClient may be nil,
// in which case every read goes straight to the database.
func NewRankingService(characters *repository.CharacterRepository, redisClient *redis.Client, uploadsDir string) *RankingService {
	return &RankingService{
		characters:  characters,
		redisClient: redisClient,
		uploadsDir:  uploadsDir,
	}
}

// ClampLimit normalizes a requested row count into [1, MaxRankingLimit]
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRankingLimit
	}
	if limit > MaxRankingLimit {
		return MaxRankingLimit
	}
	return limit
}

// TopCharacters returns up to limit ranked characters, serving from the
// Redis cache when a fresh projection is available
func (s *RankingService) TopCharacters(ctx context.Context, limit int) ([]models.CharacterRank, error) {
	limit = ClampLimit(limit)
	cacheKey := fmt.Sprintf("ranking:top:%d", limit)

	if s.redisClient != nil {
		cacheCtx, cancel := context.WithTimeout(ctx, redisTimeout)
		cached, err := s.redisClient.Get(cacheCtx, cacheKey).Result()
		cancel()
		if err == nil {
			var rows []models.CharacterRank
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				return rows, nil
			}
		}
	}

	queryCtx, cancel := context.WithTimeout(ctx, gameDBTimeout)
	defer cancel()
	rows, err := s.characters.TopCharacters(queryCtx, limit)
	if err != nil {
		return nil, fmt.Errorf("characters db query failed: %v", err)
	}

	for i := range rows {
		rows[i].ImageURL = s.probeCharacterImage(rows[i].Name)
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(rows); err == nil {
			cacheCtx, cancel := context.WithTimeout(context.Background(), redisTimeout)
			if err := s.redisClient.Set(cacheCtx, cacheKey, data, rankingCacheTTL).Err(); err != nil {
				zaplogger.Warn("Failed to cache ranking", zaplogger.Fields{"error": err.Error()})
			}
			cancel()
		}
	}

	return rows, nil
}

// OnlinePlayers returns the currently online characters, always live
func (s *RankingService) OnlinePlayers(ctx context.Context) ([]models.OnlinePlayer, error) {
	queryCtx, cancel := context.WithTimeout(ctx, gameDBTimeout)
	defer cancel()
	rows, err := s.characters.OnlinePlayers(queryCtx)
	if err != nil {
		return nil, fmt.Errorf("characters db query failed: %v", err)
	}
	return rows, nil
}

// Ping verifies the characters database connection
func (s *RankingService) Ping(ctx context.Context) error {
	queryCtx, cancel := context.WithTimeout(ctx, gameDBTimeout)
	defer cancel()
	return s.characters.Ping(queryCtx)
}

// WarmCache refreshes the cached default and maximum projections
func (s *RankingService) WarmCache(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}
	for _, limit := range []int{DefaultRankingLimit, MaxRankingLimit} {
		cacheKey := fmt.Sprintf("ranking:top:%d", limit)
		cacheCtx, cancel := context.WithTimeout(ctx, redisTimeout)
		err := s.redisClient.Del(cacheCtx, cacheKey).Err()
		cancel()
		if err != nil {
			return err
		}
		if _, err := s.TopCharacters(ctx, limit); err != nil {
			return err
		}
	}
	return nil
}

// probeCharacterImage looks for an uploaded portrait matching the sanitized
// character name across the allowed extensions. Returns the public URL of
// the first match, or empty when none exists.
func (s *RankingService) probeCharacterImage(name string) string {
	safeName := SanitizeCharacterName(name)
	for _, ext := range imageExtensions {
		candidate := filepath.Join(s.uploadsDir, charImagesSubdir, safeName+ext)
		if _, err := os.Stat(candidate); err == nil {
			return charImagesBaseURL + safeName + ext
		}
	}
	return ""
}

// SanitizeCharacterName replaces every character outside [a-zA-Z0-9_-] so a
// character name can never traverse outside the uploads directory
func SanitizeCharacterName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}
