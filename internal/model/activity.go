package model

import "time"

// Activity is one append-only entry of the audit trail. The actor name is
// copied at write time and never re-joined.
type Activity struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	UserName  string    `db:"user_name" json:"user_name"`
	Action    string    `db:"action" json:"action"`
	Details   *string   `db:"details" json:"details"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateActivityParams struct {
	UserID   int64
	UserName string
	Action   string
	Details  *string
}
