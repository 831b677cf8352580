// Package models contains the models for the Aethelgard Community API
package models

import "time"

// UsersFileName is the name of the users collection document
const UsersFileName = "users"

// SiteUser represents an identity registered directly on the website
type SiteUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Nickname     string     `json:"nickname"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	PasswordHash string     `json:"passwordHash"`
	AvatarURL    string     `json:"avatarUrl"`
	IsAdmin      bool       `json:"isAdmin"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
}

// UsersDocument is the top-level shape of the users collection
type UsersDocument struct {
	Users []SiteUser `json:"users"`
}

// PublicUser is the user projection returned by the API. It never carries
// the password hash.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	AvatarURL string `json:"avatarUrl"`
	IsAdmin   bool   `json:"isAdmin"`
}

// AdminUserView is the projection returned to administrators, adding the
// lifecycle timestamps to the public fields.
type AdminUserView struct {
	PublicUser
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

// RecentUser is the minimal projection for the recently joined listing
type RecentUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
}

// Public returns the API projection of the user with the admin flag
// overridden by the caller's derivation.
func (u *SiteUser) Public(isAdmin bool) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Nickname:  u.Nickname,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		IsAdmin:   isAdmin,
	}
}

// AdminView returns the administrator projection of the user
func (u *SiteUser) AdminView() AdminUserView {
	return AdminUserView{
		PublicUser:  u.Public(u.IsAdmin),
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// Recent returns the recently-joined projection of the user
func (u *SiteUser) Recent() RecentUser {
	return RecentUser{
		ID:        u.ID,
		Name:      u.Name,
		Nickname:  u.Nickname,
		AvatarURL: u.AvatarURL,
	}
}
