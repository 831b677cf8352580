// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Identity is the canonical identity produced from either a site user or a
// game account. Token claims are built from it regardless of which
// verification path succeeded.
type Identity struct {
	ID       string
	Name     string
	Nickname string
	Email    string
	IsAdmin  bool
}

// isAdminEmail reports whether email is on the configured admin allow-list
func isAdminEmail(allowList []string, email string) bool {
	if email == "" {
		return false
	}
	lower := strings.ToLower(email)
	for _, admin := range allowList {
		if admin == lower {
			return true
		}
	}
	return false
}

// newID returns a prefixed opaque id, e.g. "u3f9c1a2b"
func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// defaultAvatarURL returns a deterministic generated avatar for the seed.
// Site users get the adventurer style, game accounts the initials style.
func defaultAvatarURL(style, seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/%s/svg?seed=%s&size=64", style, url.QueryEscape(seed))
}
