package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
	"github.com/ecodive/backoffice-server-go/internal/util"
)

const (
	msgUserFieldsMissing = "Missing required fields. All fields are required."
	msgInvalidEmail      = "Invalid email format."
)

type UserService struct {
	users    repository.UserRepository
	activity *ActivityLogger
}

func NewUserService(users repository.UserRepository, activity *ActivityLogger) *UserService {
	return &UserService{users: users, activity: activity}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User")
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, actor *model.SanitizedAccount, params model.CreateUserParams) (*model.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	for _, field := range []string{params.FirstName, params.LastName, params.Email, params.IDNumber, params.Password} {
		if strings.TrimSpace(field) == "" {
			return nil, apperrors.ValidationError(msgUserFieldsMissing)
		}
	}
	if !util.IsValidEmail(params.Email) {
		return nil, apperrors.ValidationError(msgInvalidEmail)
	}

	hash, err := util.HashPassword(params.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to hash password", err)
	}

	user, err := s.users.Create(ctx, model.User{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		IDNumber:     params.IDNumber,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionAddedUser,
		fmt.Sprintf("Added new user: %s", user.FullName()))
	return user, nil
}

func (s *UserService) Update(ctx context.Context, actor *model.SanitizedAccount, id int64, params model.UpdateUserParams) (*model.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if params.IsEmpty() {
		return nil, apperrors.ValidationError("No fields to update")
	}
	if params.Email != nil && !util.IsValidEmail(*params.Email) {
		return nil, apperrors.ValidationError(msgInvalidEmail)
	}
	if err := validate(params); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionUpdatedUser,
		fmt.Sprintf("Updated user: %s", user.FullName()))
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor *model.SanitizedAccount, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	user, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("User")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionDeletedUser,
		fmt.Sprintf("Deleted user: %s", user.FullName()))
	return nil
}
