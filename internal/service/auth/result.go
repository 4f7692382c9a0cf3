package auth

import "github.com/ownersalliance/trustportal/internal/domain"

// AuthResult is returned by login operations.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
