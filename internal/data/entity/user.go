package entity

import (
	"time"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User adalah credential record.
// PasswordHash hanya berisi bcrypt hash - plaintext tidak pernah
// disimpan di entity. Public read projections mengecualikan field
// password, jadi PasswordHash kosong kecuali record diambil lewat
// authentication view (FindByEmailWithPassword).
type User struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	Name         string    `bson:"name"`
	Role         UserRole  `bson:"role"`
	IsActive     bool      `bson:"is_active"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// HasPasswordLoaded reports whether the hash was fetched.
// Verifying a password against a record loaded through the public
// projection is a caller error; callers must use the auth view.
func (u *User) HasPasswordLoaded() bool {
	return u.PasswordHash != ""
}
