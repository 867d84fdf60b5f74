package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/medtrack/medtrack/internal/platform/auth"
)

// User maps to the users table. Accounts are created at signup and never
// mutated or deleted afterwards; the password hash never leaves the server.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         auth.Role `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
