package repositories

import (
	"fmt"
	"strings"

	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/config"
)

// UserRepository is the read-only credential lookup used by the auth
// service. Usernames match case-insensitively.
type UserRepository interface {
	FindByUsername(username string) (*models.User, bool)
}

// InMemoryUserRepository holds the credential table loaded once at
// startup. It is never mutated after construction, so lookups need no
// locking.
type InMemoryUserRepository struct {
	users map[string]models.User
}

// NewInMemoryUserRepository builds the credential table from config
// entries. Unknown role names are rejected.
func NewInMemoryUserRepository(entries []config.CredentialEntry) (*InMemoryUserRepository, error) {
	users := make(map[string]models.User, len(entries))

	for _, entry := range entries {
		roles := make([]models.Role, 0, len(entry.Roles))
		for _, name := range entry.Roles {
			role, ok := models.ParseRole(name)
			if !ok {
				return nil, fmt.Errorf("unknown role %q for user %q", name, entry.Username)
			}
			roles = append(roles, role)
		}

		key := strings.ToLower(entry.Username)
		if _, exists := users[key]; exists {
			return nil, fmt.Errorf("duplicate credential entry for user %q", entry.Username)
		}

		users[key] = models.User{
			Username: entry.Username,
			Password: entry.Password,
			Roles:    roles,
		}
	}

	return &InMemoryUserRepository{users: users}, nil
}

// FindByUsername looks up a user by case-insensitive username.
func (r *InMemoryUserRepository) FindByUsername(username string) (*models.User, bool) {
	user, ok := r.users[strings.ToLower(username)]
	if !ok {
		return nil, false
	}
	return &user, true
}
