package service

import (
	"context"
	"strings"

	"github.com/ecodive/backoffice-server-go/internal/config"
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
	"github.com/ecodive/backoffice-server-go/internal/util"
)

// SupportService stores support requests for the admin inbox. Nothing is
// mailed out.
type SupportService struct {
	messages repository.SupportMessageRepository
}

func NewSupportService(messages repository.SupportMessageRepository) *SupportService {
	return &SupportService{messages: messages}
}

// Send stores a new message as pending and returns its id.
func (s *SupportService) Send(ctx context.Context, params model.CreateSupportMessageParams) (int64, error) {
	params.Priority = strings.ToLower(strings.TrimSpace(params.Priority))
	if params.Email != nil && strings.TrimSpace(*params.Email) == "" {
		params.Email = nil
	}

	for _, field := range []string{params.Category, params.Priority, params.Subject, params.Message} {
		if strings.TrimSpace(field) == "" {
			return 0, apperrors.ValidationError("Missing required fields")
		}
	}
	if err := validate(params); err != nil {
		return 0, err
	}

	msg, err := s.messages.Create(ctx, params)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

func (s *SupportService) List(ctx context.Context) ([]model.SupportMessage, error) {
	return s.messages.FindRecent(ctx, config.SupportMessagesLimit)
}

func (s *SupportService) UpdateStatus(ctx context.Context, id int64, params model.UpdateSupportMessageParams) (*model.SupportMessage, error) {
	if params.Status == "" || !util.IsValidEnum(string(params.Status), model.SupportStatuses) {
		return nil, apperrors.ValidationError("Invalid status. Must be one of: " + strings.Join(model.SupportStatuses, ", "))
	}

	msg, err := s.messages.UpdateStatus(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, apperrors.NotFound("Support message")
	}
	return msg, nil
}
