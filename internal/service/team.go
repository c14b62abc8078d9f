package service

import (
	"context"
	"fmt"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
	"github.com/ecodive/backoffice-server-go/internal/util"
)

const msgInvalidRole = "Invalid role. Must be Admin or Viewer."

type TeamService struct {
	members  repository.TeamMemberRepository
	activity *ActivityLogger
}

func NewTeamService(members repository.TeamMemberRepository, activity *ActivityLogger) *TeamService {
	return &TeamService{members: members, activity: activity}
}

func (s *TeamService) List(ctx context.Context) ([]model.SanitizedAccount, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]model.SanitizedAccount, 0, len(members))
	for i := range members {
		accounts = append(accounts, *members[i].Sanitize())
	}
	return accounts, nil
}

func (s *TeamService) Get(ctx context.Context, id int64) (*model.SanitizedAccount, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperrors.NotFound("Team member")
	}
	return member.Sanitize(), nil
}

// Create adds a team member. The role defaults to Viewer and is stored in
// its canonical spelling.
func (s *TeamService) Create(ctx context.Context, actor *model.SanitizedAccount, params model.CreateTeamMemberParams) (*model.SanitizedAccount, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validate(params); err != nil {
		return nil, err
	}

	role := authz.RoleViewer
	if params.Role != "" {
		role = authz.ParseRole(params.Role)
		if !role.Valid() {
			return nil, apperrors.ValidationError(msgInvalidRole)
		}
	}

	hash, err := util.HashPassword(params.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to hash password", err)
	}

	member, err := s.members.Create(ctx, model.TeamMember{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         string(role),
		ProfileImage: params.ProfileImage,
	})
	if err != nil {
		return nil, err
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionAddedTeamMember,
		fmt.Sprintf("Added new team member: %s", member.FullName()))
	return member.Sanitize(), nil
}

// Update applies a partial update. Admins may edit anyone; other roles only
// their own profile, and never their role.
func (s *TeamService) Update(ctx context.Context, actor *model.SanitizedAccount, id int64, params model.UpdateTeamMemberParams) (*model.SanitizedAccount, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	isAdmin := authz.IsAdmin(actor)
	if !isAdmin && actor.ID != id {
		return nil, apperrors.Forbidden("Insufficient permissions")
	}

	if params.Password != nil && *params.Password == "" {
		params.Password = nil
	}
	if err := validate(params); err != nil {
		return nil, err
	}

	existing, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("Team member")
	}

	changes := model.TeamMemberChanges{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		ProfileImage: params.ProfileImage,
	}

	if params.Role != nil {
		role := authz.ParseRole(*params.Role)
		if !role.Valid() {
			return nil, apperrors.ValidationError(msgInvalidRole)
		}
		if role != authz.ParseRole(existing.Role) {
			if !isAdmin {
				return nil, apperrors.Forbidden("Only administrators can change roles")
			}
			canonical := string(role)
			changes.Role = &canonical
		}
	}

	if params.Password != nil {
		hash, err := util.HashPassword(*params.Password)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to hash password", err)
		}
		changes.PasswordHash = &hash
	}

	if changes.IsEmpty() {
		return nil, apperrors.ValidationError("No fields to update")
	}

	member, err := s.members.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperrors.NotFound("Team member")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionUpdatedTeamMember,
		fmt.Sprintf("Updated team member: %s", member.FullName()))
	return member.Sanitize(), nil
}

func (s *TeamService) Delete(ctx context.Context, actor *model.SanitizedAccount, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor.ID == id {
		return apperrors.Forbidden("You cannot delete your own account.")
	}

	member, err := s.members.Delete(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return apperrors.NotFound("Team member")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionDeletedTeamMember,
		fmt.Sprintf("Deleted team member: %s", member.FullName()))
	return nil
}
