// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"context"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"gorm.io/gorm"
)

// AccountRepository reads the account table of the game auth database
type AccountRepository struct {
	DB *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// FindByCredentials returns the account matching the username and the legacy
// sha_pass_hash digest. Returns gorm.ErrRecordNotFound when no account matches.
func (r *AccountRepository) FindByCredentials(ctx context.Context, username, shaPassHash string) (*models.GameAccount, error) {
	var account models.GameAccount
	err := r.DB.WithContext(ctx).
		Raw("SELECT id, username FROM account WHERE username = ? AND sha_pass_hash = ?", username, shaPassHash).
		Take(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Rename updates the username of the given account. This is the only write
// path into the game databases.
func (r *AccountRepository) Rename(ctx context.Context, accountID uint32, username string) error {
	return r.DB.WithContext(ctx).
		Exec("UPDATE account SET username = ? WHERE id = ?", username, accountID).Error
}
