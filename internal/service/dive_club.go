package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
)

type DiveClubService struct {
	clubs    repository.DiveClubRepository
	activity *ActivityLogger
}

func NewDiveClubService(clubs repository.DiveClubRepository, activity *ActivityLogger) *DiveClubService {
	return &DiveClubService{clubs: clubs, activity: activity}
}

func (s *DiveClubService) List(ctx context.Context) ([]model.DiveClub, error) {
	return s.clubs.FindAll(ctx)
}

func (s *DiveClubService) Get(ctx context.Context, id int64) (*model.DiveClub, error) {
	club, err := s.clubs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, apperrors.NotFound("Dive club")
	}
	return club, nil
}

func (s *DiveClubService) Create(ctx context.Context, actor *model.SanitizedAccount, params model.DiveClubParams) (*model.DiveClub, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	params = normalizeClub(params)
	if err := validate(params); err != nil {
		return nil, err
	}

	club, err := s.clubs.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionAddedDiveClub,
		fmt.Sprintf("Added new dive club: %s (%s)", club.Name, club.City))
	return club, nil
}

// Update replaces every column of the club.
func (s *DiveClubService) Update(ctx context.Context, actor *model.SanitizedAccount, id int64, params model.DiveClubParams) (*model.DiveClub, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	params = normalizeClub(params)
	if err := validate(params); err != nil {
		return nil, err
	}

	club, err := s.clubs.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, apperrors.NotFound("Dive club")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionUpdatedDiveClub,
		fmt.Sprintf("Updated dive club: %s", club.Name))
	return club, nil
}

func (s *DiveClubService) Delete(ctx context.Context, actor *model.SanitizedAccount, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	club, err := s.clubs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if club == nil {
		return apperrors.NotFound("Dive club")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionDeletedDiveClub,
		fmt.Sprintf("Deleted dive club: %s", club.Name))
	return nil
}

func normalizeClub(p model.DiveClubParams) model.DiveClubParams {
	p.Name = strings.TrimSpace(p.Name)
	p.City = strings.TrimSpace(p.City)
	return p
}
