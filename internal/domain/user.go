package domain

import "time"

// User represents a portal account. Accounts created through Discord
// federation have no PasswordHash and can never log in with a password.
type User struct {
	ID                   string    `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	PasswordHash         *string   `json:"-"`
	Role                 UserRole  `json:"role"`
	FirstName            *string   `json:"firstName"`
	LastName             *string   `json:"lastName"`
	ProfileImageURL      *string   `json:"profileImageUrl"`
	IsActive             bool      `json:"isActive"`
	Department           *string   `json:"department"`
	Specialization       *string   `json:"specialization"`
	StaffID              *string   `json:"staffId"`
	PhoneNumber          *string   `json:"phoneNumber"`
	OfficeLocation       *string   `json:"officeLocation"`
	EmergencyContact     *string   `json:"emergencyContact"`
	Certifications       []string  `json:"certifications"`
	DiscordID            *string   `json:"discordId"`
	DiscordUsername      *string   `json:"discordUsername"`
	DiscordDiscriminator *string   `json:"discordDiscriminator"`
	DiscordAvatar        *string   `json:"discordAvatar"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// UserParams is the partial input for creating or updating a user.
// Nil fields are defaulted on create and left untouched on update.
type UserParams struct {
	Username             *string   `json:"username"`
	Email                *string   `json:"email"`
	PasswordHash         *string   `json:"-"`
	Role                 *UserRole `json:"role"`
	FirstName            *string   `json:"firstName"`
	LastName             *string   `json:"lastName"`
	ProfileImageURL      *string   `json:"profileImageUrl"`
	IsActive             *bool     `json:"isActive"`
	Department           *string   `json:"department"`
	Specialization       *string   `json:"specialization"`
	StaffID              *string   `json:"staffId"`
	PhoneNumber          *string   `json:"phoneNumber"`
	OfficeLocation       *string   `json:"officeLocation"`
	EmergencyContact     *string   `json:"emergencyContact"`
	Certifications       []string  `json:"certifications"`
	DiscordID            *string   `json:"discordId"`
	DiscordUsername      *string   `json:"discordUsername"`
	DiscordDiscriminator *string   `json:"discordDiscriminator"`
	DiscordAvatar        *string   `json:"discordAvatar"`
}
