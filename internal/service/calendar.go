package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
)

type CalendarService struct {
	events   repository.EventRepository
	activity *ActivityLogger
	now      func() time.Time
}

func NewCalendarService(events repository.EventRepository, activity *ActivityLogger) *CalendarService {
	return &CalendarService{events: events, activity: activity, now: time.Now}
}

func (s *CalendarService) List(ctx context.Context) ([]model.CalendarEvent, error) {
	return s.events.FindAll(ctx)
}

// ListCurrentMonth returns events starting in the current calendar month of
// the server's local time zone.
func (s *CalendarService) ListCurrentMonth(ctx context.Context) ([]model.CalendarEvent, error) {
	from, to := monthBounds(s.now())
	return s.events.FindStartingBetween(ctx, from, to)
}

func (s *CalendarService) Get(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("Event")
	}
	return event, nil
}

func (s *CalendarService) Create(ctx context.Context, actor *model.SanitizedAccount, params model.EventParams) (*model.CalendarEvent, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	params, err := prepareEvent(params)
	if err != nil {
		return nil, err
	}

	event, err := s.events.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionCreatedEvent,
		fmt.Sprintf("Created new event: %s", event.Title))
	return event, nil
}

func (s *CalendarService) Update(ctx context.Context, actor *model.SanitizedAccount, id int64, params model.EventParams) (*model.CalendarEvent, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	params, err := prepareEvent(params)
	if err != nil {
		return nil, err
	}

	event, err := s.events.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("Event")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionUpdatedEvent,
		fmt.Sprintf("Updated event: %s", event.Title))
	return event, nil
}

func (s *CalendarService) Delete(ctx context.Context, actor *model.SanitizedAccount, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	event, err := s.events.Delete(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperrors.NotFound("Event")
	}

	s.activity.RecordBestEffort(ctx, actor, model.ActionDeletedEvent,
		fmt.Sprintf("Deleted event: %s", event.Title))
	return nil
}

func prepareEvent(p model.EventParams) (model.EventParams, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))
	if p.Status == "" {
		p.Status = model.EventStatusConfirmed
	}
	if err := validate(p); err != nil {
		return p, err
	}
	return p, nil
}

// monthBounds returns [first day of t's month, first day of the next month).
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
