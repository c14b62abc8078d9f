package model

import "time"

type SupportMessage struct {
	ID            int64      `db:"id" json:"id"`
	Category      string     `db:"category" json:"category"`
	Priority      string     `db:"priority" json:"priority"`
	Subject       string     `db:"subject" json:"subject"`
	Message       string     `db:"message" json:"message"`
	UserEmail     *string    `db:"user_email" json:"user_email"`
	Timestamp     time.Time  `db:"timestamp" json:"timestamp"`
	UserAgent     *string    `db:"user_agent" json:"user_agent"`
	CurrentPage   *string    `db:"current_page" json:"current_page"`
	Status        string     `db:"status" json:"status"`
	AdminResponse *string    `db:"admin_response" json:"admin_response"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at"`
}

type CreateSupportMessageParams struct {
	Category    string     `json:"category" validate:"required,max=50"`
	Priority    string     `json:"priority" validate:"required,oneof=low medium high urgent"`
	Subject     string     `json:"subject" validate:"required,max=200"`
	Message     string     `json:"message" validate:"required"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	Timestamp   *time.Time `json:"timestamp"`
	UserAgent   *string    `json:"userAgent"`
	CurrentPage *string    `json:"currentPage"`
}

type UpdateSupportMessageParams struct {
	Status        SupportStatus `json:"status"`
	AdminResponse *string       `json:"admin_response"`
}
