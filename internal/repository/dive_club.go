package repository

import (
	"context"

	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

type DiveClubRepository interface {
	FindAll(ctx context.Context) ([]model.DiveClub, error)
	FindByID(ctx context.Context, id int64) (*model.DiveClub, error)
	Create(ctx context.Context, params model.DiveClubParams) (*model.DiveClub, error)
	Update(ctx context.Context, id int64, params model.DiveClubParams) (*model.DiveClub, error)
	Delete(ctx context.Context, id int64) (*model.DiveClub, error)
}

type diveClubRepo struct {
	db database.DBTX
}

func NewDiveClubRepository(db database.DBTX) DiveClubRepository {
	return &diveClubRepo{db: db}
}

func (r *diveClubRepo) FindAll(ctx context.Context) ([]model.DiveClub, error) {
	return getMany[model.DiveClub](ctx, r.db, `SELECT * FROM dive_clubs ORDER BY name ASC, id ASC`)
}

func (r *diveClubRepo) FindByID(ctx context.Context, id int64) (*model.DiveClub, error) {
	return getOne[model.DiveClub](ctx, r.db, `SELECT * FROM dive_clubs WHERE id = $1`, id)
}

func (r *diveClubRepo) Create(ctx context.Context, params model.DiveClubParams) (*model.DiveClub, error) {
	return getOne[model.DiveClub](ctx, r.db, `
		INSERT INTO dive_clubs (name, city, address, phone, website, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`, params.Name, params.City, params.Address, params.Phone, params.Website, params.Description)
}

func (r *diveClubRepo) Update(ctx context.Context, id int64, params model.DiveClubParams) (*model.DiveClub, error) {
	return getOne[model.DiveClub](ctx, r.db, `
		UPDATE dive_clubs
		SET name = $1, city = $2, address = $3, phone = $4, website = $5, description = $6
		WHERE id = $7
		RETURNING *
	`, params.Name, params.City, params.Address, params.Phone, params.Website, params.Description, id)
}

func (r *diveClubRepo) Delete(ctx context.Context, id int64) (*model.DiveClub, error) {
	return getOne[model.DiveClub](ctx, r.db, `DELETE FROM dive_clubs WHERE id = $1 RETURNING *`, id)
}
