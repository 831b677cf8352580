// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"context"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"gorm.io/gorm"
)

// CharacterRepository reads the characters database of the game server
type CharacterRepository struct {
	DB *gorm.DB
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{DB: db}
}

// TopCharacters returns up to limit characters ordered by level, breaking
// ties on total played time, with guild names joined in where present
func (r *CharacterRepository) TopCharacters(ctx context.Context, limit int) ([]models.CharacterRank, error) {
	var rows []models.CharacterRank
	err := r.DB.WithContext(ctx).
		Raw(`SELECT c.name, c.class, c.level, c.totaltime, g.name AS guildName
			FROM characters AS c
			LEFT JOIN guild_member AS gm ON gm.guid = c.guid
			LEFT JOIN guild AS g ON g.guildid = gm.guildid
			ORDER BY c.level DESC, c.totaltime DESC
			LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// OnlinePlayers returns the characters currently flagged online, highest
// level first
func (r *CharacterRepository) OnlinePlayers(ctx context.Context) ([]models.OnlinePlayer, error) {
	var rows []models.OnlinePlayer
	err := r.DB.WithContext(ctx).
		Raw("SELECT name, class, level FROM characters WHERE online = 1 ORDER BY level DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping verifies that the characters database is reachable
func (r *CharacterRepository) Ping(ctx context.Context) error {
	return r.DB.WithContext(ctx).Exec("SELECT 1").Error
}
