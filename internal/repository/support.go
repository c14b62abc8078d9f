package repository

import (
	"context"
	"time"

	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

type SupportMessageRepository interface {
	Create(ctx context.Context, params model.CreateSupportMessageParams) (*model.SupportMessage, error)
	FindRecent(ctx context.Context, limit int) ([]model.SupportMessage, error)
	UpdateStatus(ctx context.Context, id int64, params model.UpdateSupportMessageParams) (*model.SupportMessage, error)
}

type supportMessageRepo struct {
	db database.DBTX
}

func NewSupportMessageRepository(db database.DBTX) SupportMessageRepository {
	return &supportMessageRepo{db: db}
}

func (r *supportMessageRepo) Create(ctx context.Context, params model.CreateSupportMessageParams) (*model.SupportMessage, error) {
	timestamp := time.Now()
	if params.Timestamp != nil {
		timestamp = *params.Timestamp
	}

	return getOne[model.SupportMessage](ctx, r.db, `
		INSERT INTO support_messages
			(category, priority, subject, message, user_email, timestamp, user_agent, current_page, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	`, params.Category, params.Priority, params.Subject, params.Message, params.Email,
		timestamp, params.UserAgent, params.CurrentPage, model.SupportStatusPending)
}

func (r *supportMessageRepo) FindRecent(ctx context.Context, limit int) ([]model.SupportMessage, error) {
	return getMany[model.SupportMessage](ctx, r.db, `
		SELECT * FROM support_messages
		ORDER BY timestamp DESC, id DESC
		LIMIT $1
	`, limit)
}

func (r *supportMessageRepo) UpdateStatus(ctx context.Context, id int64, params model.UpdateSupportMessageParams) (*model.SupportMessage, error) {
	return getOne[model.SupportMessage](ctx, r.db, `
		UPDATE support_messages
		SET status = $1, admin_response = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING *
	`, params.Status, params.AdminResponse, id)
}
