package repository

import (
	"context"

	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

type StatsRepository interface {
	DashboardCounts(ctx context.Context) (*model.DashboardCounts, error)
}

type statsRepo struct {
	db database.DBTX
}

func NewStatsRepository(db database.DBTX) StatsRepository {
	return &statsRepo{db: db}
}

// DashboardCounts gathers every tally in one round trip. Roles are compared
// case-insensitively.
func (r *statsRepo) DashboardCounts(ctx context.Context) (*model.DashboardCounts, error) {
	counts, err := getOne[model.DashboardCounts](ctx, r.db, `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM team_members WHERE LOWER(role) = 'admin') AS admin_count,
			(SELECT COUNT(*) FROM team_members WHERE LOWER(role) = 'viewer') AS viewer_count,
			(SELECT COUNT(*) FROM dive_clubs) AS clubs_count,
			(SELECT COUNT(*) FROM calendar
				WHERE start_time >= date_trunc('month', NOW())
				  AND start_time < date_trunc('month', NOW()) + INTERVAL '1 month') AS events_this_month,
			(SELECT COUNT(*) FROM users
				WHERE created_at >= date_trunc('month', NOW())) AS new_users_this_month,
			(SELECT COUNT(*) FROM users
				WHERE created_at >= date_trunc('month', NOW()) - INTERVAL '1 month'
				  AND created_at < date_trunc('month', NOW())) AS new_users_last_month
	`)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		return &model.DashboardCounts{}, nil
	}
	return counts, nil
}
