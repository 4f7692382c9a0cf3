package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateUser stores a new user, filling defaults for omitted fields.
func (s *Store) CreateUser(ctx context.Context, p domain.UserParams) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	u := domain.User{
		ID:                   newID(),
		Username:             strOr(p.Username, ""),
		Email:                strOr(p.Email, ""),
		PasswordHash:         p.PasswordHash,
		Role:                 domain.RoleUser,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		ProfileImageURL:      p.ProfileImageURL,
		IsActive:             boolOr(p.IsActive, true),
		Department:           p.Department,
		Specialization:       p.Specialization,
		StaffID:              p.StaffID,
		PhoneNumber:          p.PhoneNumber,
		OfficeLocation:       p.OfficeLocation,
		EmergencyContact:     p.EmergencyContact,
		Certifications:       strs(p.Certifications),
		DiscordID:            p.DiscordID,
		DiscordUsername:      p.DiscordUsername,
		DiscordDiscriminator: p.DiscordDiscriminator,
		DiscordAvatar:        p.DiscordAvatar,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if p.Role != nil {
		u.Role = *p.Role
	}

	s.users.put(u.ID, &u)

	out := u
	return &out, nil
}

// GetUser returns a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	out := *u
	return &out, nil
}

// GetUserByEmail returns the first user with the given email.
// Lookup is a full scan; email is not indexed.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.all() {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user by email: %w", domain.ErrNotFound)
}

// GetUserByUsername returns the first user with the given username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.all() {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user by username: %w", domain.ErrNotFound)
}

// GetUserByDiscordID returns the user linked to the given Discord id.
func (s *Store) GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.all() {
		if u.DiscordID != nil && *u.DiscordID == discordID {
			out := *u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user by discord id: %w", domain.ErrNotFound)
}

// UpdateUser shallow-merges the non-nil fields of p over the stored user
// and refreshes UpdatedAt.
func (s *Store) UpdateUser(ctx context.Context, id string, p domain.UserParams) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = p.PasswordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
	}
	if p.LastName != nil {
		u.LastName = p.LastName
	}
	if p.ProfileImageURL != nil {
		u.ProfileImageURL = p.ProfileImageURL
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.Department != nil {
		u.Department = p.Department
	}
	if p.Specialization != nil {
		u.Specialization = p.Specialization
	}
	if p.StaffID != nil {
		u.StaffID = p.StaffID
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = p.PhoneNumber
	}
	if p.OfficeLocation != nil {
		u.OfficeLocation = p.OfficeLocation
	}
	if p.EmergencyContact != nil {
		u.EmergencyContact = p.EmergencyContact
	}
	if p.Certifications != nil {
		u.Certifications = p.Certifications
	}
	if p.DiscordID != nil {
		u.DiscordID = p.DiscordID
	}
	if p.DiscordUsername != nil {
		u.DiscordUsername = p.DiscordUsername
	}
	if p.DiscordDiscriminator != nil {
		u.DiscordDiscriminator = p.DiscordDiscriminator
	}
	if p.DiscordAvatar != nil {
		u.DiscordAvatar = p.DiscordAvatar
	}
	u.UpdatedAt = time.Now()

	out := *u
	return &out, nil
}

// AuthenticateUser validates a username/password pair. It returns
// ErrUnauthorized when the user is missing, inactive, has no local
// credential (federated account), or the password does not match.
// The bcrypt comparison runs outside the store lock.
func (s *Store) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	s.mu.RLock()
	var user *domain.User
	for _, u := range s.users.all() {
		if u.Username == username {
			copied := *u
			user = &copied
			break
		}
	}
	s.mu.RUnlock()

	if user == nil || !user.IsActive {
		s.log.DebugContext(ctx, "authentication failed: user missing or inactive",
			slog.String("username", username))
		return nil, domain.ErrUnauthorized
	}
	if user.PasswordHash == nil {
		// Federated account with no local password.
		s.log.DebugContext(ctx, "authentication failed: no local credential",
			slog.String("username", username))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// GetStaffMembers returns every user holding a staff-level role.
func (s *Store) GetStaffMembers(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.User
	for _, u := range s.users.all() {
		if u.Role.IsStaff() {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

// GetAllUsers returns every user in insertion order.
func (s *Store) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, 0, s.users.len())
	for _, u := range s.users.all() {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}
