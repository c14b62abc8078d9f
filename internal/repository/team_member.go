package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
)

type TeamMemberRepository interface {
	FindAll(ctx context.Context) ([]model.TeamMember, error)
	FindByID(ctx context.Context, id int64) (*model.TeamMember, error)
	FindByEmail(ctx context.Context, email string) (*model.TeamMember, error)
	Create(ctx context.Context, member model.TeamMember) (*model.TeamMember, error)
	Update(ctx context.Context, id int64, changes model.TeamMemberChanges) (*model.TeamMember, error)
	Delete(ctx context.Context, id int64) (*model.TeamMember, error)
	UpsertByEmail(ctx context.Context, member model.TeamMember) (*model.TeamMember, error)
}

type teamMemberRepo struct {
	db database.DBTX
}

func NewTeamMemberRepository(db database.DBTX) TeamMemberRepository {
	return &teamMemberRepo{db: db}
}

func (r *teamMemberRepo) FindAll(ctx context.Context) ([]model.TeamMember, error) {
	return getMany[model.TeamMember](ctx, r.db, `
		SELECT * FROM team_members
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *teamMemberRepo) FindByID(ctx context.Context, id int64) (*model.TeamMember, error) {
	return getOne[model.TeamMember](ctx, r.db, `SELECT * FROM team_members WHERE id = $1`, id)
}

// FindByEmail matches the stored email exactly.
func (r *teamMemberRepo) FindByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	return getOne[model.TeamMember](ctx, r.db, `SELECT * FROM team_members WHERE email = $1`, email)
}

func (r *teamMemberRepo) Create(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	return getOne[model.TeamMember](ctx, r.db, `
		INSERT INTO team_members (first_name, last_name, email, password, role, profile_image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`, member.FirstName, member.LastName, member.Email, member.PasswordHash, member.Role, member.ProfileImage)
}

func (r *teamMemberRepo) Update(ctx context.Context, id int64, changes model.TeamMemberChanges) (*model.TeamMember, error) {
	if changes.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	update := psql.Update("team_members").Where(sq.Eq{"id": id}).Suffix("RETURNING *")
	if changes.FirstName != nil {
		update = update.Set("first_name", *changes.FirstName)
	}
	if changes.LastName != nil {
		update = update.Set("last_name", *changes.LastName)
	}
	if changes.Email != nil {
		update = update.Set("email", *changes.Email)
	}
	if changes.PasswordHash != nil {
		update = update.Set("password", *changes.PasswordHash)
	}
	if changes.Role != nil {
		update = update.Set("role", *changes.Role)
	}
	if changes.ProfileImage != nil {
		update = update.Set("profile_image", *changes.ProfileImage)
	}

	return getOneBuilt[model.TeamMember](ctx, r.db, update)
}

func (r *teamMemberRepo) Delete(ctx context.Context, id int64) (*model.TeamMember, error) {
	return getOne[model.TeamMember](ctx, r.db, `DELETE FROM team_members WHERE id = $1 RETURNING *`, id)
}

// UpsertByEmail inserts the member or, when the email exists, resets its
// password hash and role.
func (r *teamMemberRepo) UpsertByEmail(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	return getOne[model.TeamMember](ctx, r.db, `
		INSERT INTO team_members (first_name, last_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET password = EXCLUDED.password, role = EXCLUDED.role
		RETURNING *
	`, member.FirstName, member.LastName, member.Email, member.PasswordHash, member.Role)
}
