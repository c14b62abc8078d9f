package service

import (
	"context"

	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/metrics"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
	"github.com/ecodive/backoffice-server-go/internal/util"
)

type AuthService struct {
	members repository.TeamMemberRepository
}

func NewAuthService(members repository.TeamMemberRepository) *AuthService {
	return &AuthService{members: members}
}

// Login verifies credentials against the team member table. An unknown
// email and a wrong password fail identically, and both pay for one bcrypt
// comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.SanitizedAccount, error) {
	if email == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("missing_fields").Inc()
		return nil, apperrors.ValidationError(apperrors.MsgCredentialsMissing)
	}

	member, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if member == nil {
		util.BurnPasswordCheck(password)
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, apperrors.InvalidCredentials()
	}

	if !util.CheckPasswordHash(password, member.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, apperrors.InvalidCredentials()
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return member.Sanitize(), nil
}
