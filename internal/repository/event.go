package repository

import (
	"context"
	"time"

	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

type EventRepository interface {
	FindAll(ctx context.Context) ([]model.CalendarEvent, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error)
	FindByID(ctx context.Context, id int64) (*model.CalendarEvent, error)
	Create(ctx context.Context, params model.EventParams) (*model.CalendarEvent, error)
	Update(ctx context.Context, id int64, params model.EventParams) (*model.CalendarEvent, error)
	Delete(ctx context.Context, id int64) (*model.CalendarEvent, error)
}

type eventRepo struct {
	db database.DBTX
}

func NewEventRepository(db database.DBTX) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) FindAll(ctx context.Context) ([]model.CalendarEvent, error) {
	return getMany[model.CalendarEvent](ctx, r.db, `SELECT * FROM calendar ORDER BY start_time ASC, id ASC`)
}

// FindStartingBetween returns events with from <= start_time < to.
func (r *eventRepo) FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error) {
	return getMany[model.CalendarEvent](ctx, r.db, `
		SELECT * FROM calendar
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time ASC, id ASC
	`, from, to)
}

func (r *eventRepo) FindByID(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	return getOne[model.CalendarEvent](ctx, r.db, `SELECT * FROM calendar WHERE id = $1`, id)
}

func (r *eventRepo) Create(ctx context.Context, params model.EventParams) (*model.CalendarEvent, error) {
	return getOne[model.CalendarEvent](ctx, r.db, `
		INSERT INTO calendar (title, description, start_time, end_time, location, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`, params.Title, params.Description, params.StartTime, params.EndTime, params.Location, params.Status)
}

func (r *eventRepo) Update(ctx context.Context, id int64, params model.EventParams) (*model.CalendarEvent, error) {
	return getOne[model.CalendarEvent](ctx, r.db, `
		UPDATE calendar
		SET title = $1, description = $2, start_time = $3, end_time = $4,
			location = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING *
	`, params.Title, params.Description, params.StartTime, params.EndTime, params.Location, params.Status, id)
}

func (r *eventRepo) Delete(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	return getOne[model.CalendarEvent](ctx, r.db, `DELETE FROM calendar WHERE id = $1 RETURNING *`, id)
}
