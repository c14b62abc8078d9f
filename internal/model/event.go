package model

import "time"

type CalendarEvent struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	StartTime   time.Time  `db:"start_time" json:"start_time"`
	EndTime     time.Time  `db:"end_time" json:"end_time"`
	Location    *string    `db:"location" json:"location"`
	Status      string     `db:"status" json:"status"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

// EventParams holds a parsed event body. Times are resolved by the handler
// so the service only sees concrete instants.
type EventParams struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtefield=StartTime"`
	Location    *string   `json:"location"`
	Status      string    `json:"status" validate:"omitempty,oneof=confirmed tentative cancelled"`
}
