package model

import "time"

// User is a diving customer. Users have no back-office login.
type User struct {
	ID           int64     `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	IDNumber     string    `db:"id_number" json:"id_number"`
	PasswordHash string    `db:"password" json:"-"`
	ProfileImage *string   `db:"profile_image" json:"profile_image"`
	LicenseFront *string   `db:"license_front" json:"license_front"`
	LicenseBack  *string   `db:"license_back" json:"license_back"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (u *User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}

// CreateUserParams mirrors the camelCase body the user form posts.
type CreateUserParams struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	IDNumber  string `json:"idNumber" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type UpdateUserParams struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
	IDNumber     *string `json:"id_number" validate:"omitempty,min=1"`
	ProfileImage *string `json:"profile_image"`
	LicenseFront *string `json:"license_front"`
	LicenseBack  *string `json:"license_back"`
}

func (p UpdateUserParams) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.IDNumber == nil &&
		p.ProfileImage == nil && p.LicenseFront == nil && p.LicenseBack == nil
}
