package repository

import (
	"context"

	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

// ActivityRepository is append-only: there is no update or delete.
type ActivityRepository interface {
	Create(ctx context.Context, params model.CreateActivityParams) (*model.Activity, error)
	FindRecent(ctx context.Context, limit int) ([]model.Activity, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Activity, error)
}

type activityRepo struct {
	db database.DBTX
}

func NewActivityRepository(db database.DBTX) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, params model.CreateActivityParams) (*model.Activity, error) {
	return getOne[model.Activity](ctx, r.db, `
		INSERT INTO user_activities (user_id, user_name, action, details, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, user_name, action, details, created_at
	`, params.UserID, params.UserName, params.Action, params.Details)
}

func (r *activityRepo) FindRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	return getMany[model.Activity](ctx, r.db, `
		SELECT id, user_id, user_name, action, details, created_at
		FROM user_activities
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
}

func (r *activityRepo) FindByUserID(ctx context.Context, userID int64) ([]model.Activity, error) {
	return getMany[model.Activity](ctx, r.db, `
		SELECT id, user_id, user_name, action, details, created_at
		FROM user_activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
}
