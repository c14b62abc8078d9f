package model

import (
	"strings"
	"time"
)

// TeamMember is a login-capable operator account.
type TeamMember struct {
	ID           int64     `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Role         string    `db:"role" json:"role"`
	ProfileImage *string   `db:"profile_image" json:"profile_image"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SanitizedAccount is a TeamMember without its password hash. It is the
// only account shape that leaves the server and the snapshot a session holds.
type SanitizedAccount struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *TeamMember) Sanitize() *SanitizedAccount {
	if m == nil {
		return nil
	}
	return &SanitizedAccount{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Role:         m.Role,
		ProfileImage: m.ProfileImage,
		CreatedAt:    m.CreatedAt,
	}
}

func (m *TeamMember) FullName() string {
	return joinName(m.FirstName, m.LastName)
}

func (a *SanitizedAccount) FullName() string {
	return joinName(a.FirstName, a.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

type CreateTeamMemberParams struct {
	FirstName    string  `json:"first_name" validate:"required,max=100"`
	LastName     string  `json:"last_name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Password     string  `json:"password" validate:"required,min=8,max=72"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image"`
}

// UpdateTeamMemberParams carries a partial update; nil fields are left as is.
type UpdateTeamMemberParams struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Password     *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role         *string `json:"role"`
	ProfileImage *string `json:"profile_image"`
}

// TeamMemberChanges is the storage-level form of an update, with the
// password already hashed and the role canonicalized.
type TeamMemberChanges struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	Role         *string
	ProfileImage *string
}

func (c TeamMemberChanges) IsEmpty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Email == nil &&
		c.PasswordHash == nil && c.Role == nil && c.ProfileImage == nil
}
