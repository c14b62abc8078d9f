package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ecodive/backoffice-server-go/internal/model"
)

// Mock repositories

type mockTeamMemberRepo struct {
	mock.Mock
}

func (m *mockTeamMemberRepo) FindAll(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *mockTeamMemberRepo) FindByID(ctx context.Context, id int64) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *mockTeamMemberRepo) FindByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *mockTeamMemberRepo) Create(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *mockTeamMemberRepo) Update(ctx context.Context, id int64, changes model.TeamMemberChanges) (*model.TeamMember, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *mockTeamMemberRepo) Delete(ctx context.Context, id int64) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *mockTeamMemberRepo) UpsertByEmail(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, params model.UpdateUserParams) (*model.User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockDiveClubRepo struct {
	mock.Mock
}

func (m *mockDiveClubRepo) FindAll(ctx context.Context) ([]model.DiveClub, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiveClub), args.Error(1)
}

func (m *mockDiveClubRepo) FindByID(ctx context.Context, id int64) (*model.DiveClub, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiveClub), args.Error(1)
}

func (m *mockDiveClubRepo) Create(ctx context.Context, params model.DiveClubParams) (*model.DiveClub, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiveClub), args.Error(1)
}

func (m *mockDiveClubRepo) Update(ctx context.Context, id int64, params model.DiveClubParams) (*model.DiveClub, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiveClub), args.Error(1)
}

func (m *mockDiveClubRepo) Delete(ctx context.Context, id int64) (*model.DiveClub, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiveClub), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]model.CalendarEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CalendarEvent), args.Error(1)
}

func (m *mockEventRepo) FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CalendarEvent), args.Error(1)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarEvent), args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, params model.EventParams) (*model.CalendarEvent, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarEvent), args.Error(1)
}

func (m *mockEventRepo) Update(ctx context.Context, id int64, params model.EventParams) (*model.CalendarEvent, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarEvent), args.Error(1)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarEvent), args.Error(1)
}

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) Create(ctx context.Context, params model.CreateActivityParams) (*model.Activity, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *mockActivityRepo) FindRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *mockActivityRepo) FindByUserID(ctx context.Context, userID int64) ([]model.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

type mockSupportRepo struct {
	mock.Mock
}

func (m *mockSupportRepo) Create(ctx context.Context, params model.CreateSupportMessageParams) (*model.SupportMessage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportMessage), args.Error(1)
}

func (m *mockSupportRepo) FindRecent(ctx context.Context, limit int) ([]model.SupportMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupportMessage), args.Error(1)
}

func (m *mockSupportRepo) UpdateStatus(ctx context.Context, id int64, params model.UpdateSupportMessageParams) (*model.SupportMessage, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportMessage), args.Error(1)
}

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) DashboardCounts(ctx context.Context) (*model.DashboardCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardCounts), args.Error(1)
}

// Fixtures

func adminActor() *model.SanitizedAccount {
	return &model.SanitizedAccount{ID: 1, FirstName: "Nadav", LastName: "Kan Tor", Email: "admin@ecodive.com", Role: "Admin"}
}

func viewerActor() *model.SanitizedAccount {
	return &model.SanitizedAccount{ID: 7, FirstName: "Vera", LastName: "Viewer", Email: "viewer@ecodive.com", Role: "Viewer"}
}

// activityFor matches the activity entry a given actor and action produce.
func activityFor(actor *model.SanitizedAccount, action, details string) any {
	return mock.MatchedBy(func(p model.CreateActivityParams) bool {
		return p.UserID == actor.ID &&
			p.UserName == actor.FullName() &&
			p.Action == action &&
			p.Details != nil && *p.Details == details
	})
}

func strPtr(s string) *string {
	return &s
}
