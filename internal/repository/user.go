package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, id int64, params model.UpdateUserParams) (*model.User, error)
	Delete(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db database.DBTX
}

func NewUserRepository(db database.DBTX) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	return getMany[model.User](ctx, r.db, `SELECT * FROM users ORDER BY id ASC`)
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return getOne[model.User](ctx, r.db, `SELECT * FROM users WHERE id = $1`, id)
}

func (r *userRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	return getOne[model.User](ctx, r.db, `
		INSERT INTO users (first_name, last_name, email, id_number, password, profile_image, license_front, license_back)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING *
	`, user.FirstName, user.LastName, user.Email, user.IDNumber, user.PasswordHash,
		user.ProfileImage, user.LicenseFront, user.LicenseBack)
}

func (r *userRepo) Update(ctx context.Context, id int64, params model.UpdateUserParams) (*model.User, error) {
	if params.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	update := psql.Update("users").Where(sq.Eq{"id": id}).Suffix("RETURNING *")
	set := func(column string, value *string) {
		if value != nil {
			update = update.Set(column, *value)
		}
	}
	set("first_name", params.FirstName)
	set("last_name", params.LastName)
	set("email", params.Email)
	set("id_number", params.IDNumber)
	set("profile_image", params.ProfileImage)
	set("license_front", params.LicenseFront)
	set("license_back", params.LicenseBack)

	return getOneBuilt[model.User](ctx, r.db, update)
}

func (r *userRepo) Delete(ctx context.Context, id int64) (*model.User, error) {
	return getOne[model.User](ctx, r.db, `DELETE FROM users WHERE id = $1 RETURNING *`, id)
}
