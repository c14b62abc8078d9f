package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/session"
)

// In-memory repositories. Each keeps rows in insertion order.

type memTeamMembers struct {
	mu      sync.Mutex
	nextID  int64
	members []model.TeamMember
}

func (m *memTeamMembers) add(member model.TeamMember) model.TeamMember {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	member.ID = m.nextID
	member.CreatedAt = time.Now()
	m.members = append(m.members, member)
	return member
}

func (m *memTeamMembers) FindAll(ctx context.Context) ([]model.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.TeamMember(nil), m.members...), nil
}

func (m *memTeamMembers) FindByID(ctx context.Context, id int64) (*model.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.members {
		if m.members[i].ID == id {
			member := m.members[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (m *memTeamMembers) FindByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.members {
		if m.members[i].Email == email {
			member := m.members[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (m *memTeamMembers) Create(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	created := m.add(member)
	return &created, nil
}

func (m *memTeamMembers) Update(ctx context.Context, id int64, c model.TeamMemberChanges) (*model.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.members {
		if m.members[i].ID != id {
			continue
		}
		row := &m.members[i]
		if c.FirstName != nil {
			row.FirstName = *c.FirstName
		}
		if c.LastName != nil {
			row.LastName = *c.LastName
		}
		if c.Email != nil {
			row.Email = *c.Email
		}
		if c.PasswordHash != nil {
			row.PasswordHash = *c.PasswordHash
		}
		if c.Role != nil {
			row.Role = *c.Role
		}
		if c.ProfileImage != nil {
			row.ProfileImage = c.ProfileImage
		}
		updated := *row
		return &updated, nil
	}
	return nil, nil
}

func (m *memTeamMembers) Delete(ctx context.Context, id int64) (*model.TeamMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.members {
		if m.members[i].ID == id {
			deleted := m.members[i]
			m.members = append(m.members[:i], m.members[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

func (m *memTeamMembers) UpsertByEmail(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	return nil, errors.New("not supported")
}

type memDiveClubs struct {
	mu     sync.Mutex
	nextID int64
	clubs  []model.DiveClub
}

func (m *memDiveClubs) FindAll(ctx context.Context) ([]model.DiveClub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.DiveClub(nil), m.clubs...), nil
}

func (m *memDiveClubs) FindByID(ctx context.Context, id int64) (*model.DiveClub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.clubs {
		if m.clubs[i].ID == id {
			club := m.clubs[i]
			return &club, nil
		}
	}
	return nil, nil
}

func (m *memDiveClubs) Create(ctx context.Context, p model.DiveClubParams) (*model.DiveClub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	club := model.DiveClub{
		ID: m.nextID, Name: p.Name, City: p.City, Address: p.Address,
		Phone: p.Phone, Website: p.Website, Description: p.Description,
	}
	m.clubs = append(m.clubs, club)
	return &club, nil
}

func (m *memDiveClubs) Update(ctx context.Context, id int64, p model.DiveClubParams) (*model.DiveClub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.clubs {
		if m.clubs[i].ID == id {
			m.clubs[i] = model.DiveClub{
				ID: id, Name: p.Name, City: p.City, Address: p.Address,
				Phone: p.Phone, Website: p.Website, Description: p.Description,
			}
			club := m.clubs[i]
			return &club, nil
		}
	}
	return nil, nil
}

func (m *memDiveClubs) Delete(ctx context.Context, id int64) (*model.DiveClub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.clubs {
		if m.clubs[i].ID == id {
			deleted := m.clubs[i]
			m.clubs = append(m.clubs[:i], m.clubs[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

type memEvents struct {
	mu     sync.Mutex
	nextID int64
	events []model.CalendarEvent
}

func (m *memEvents) FindAll(ctx context.Context) ([]model.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]model.CalendarEvent(nil), m.events...)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (m *memEvents) FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error) {
	all, _ := m.FindAll(ctx)
	var out []model.CalendarEvent
	for _, e := range all {
		if !e.StartTime.Before(from) && e.StartTime.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEvents) FindByID(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.events {
		if m.events[i].ID == id {
			e := m.events[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memEvents) Create(ctx context.Context, p model.EventParams) (*model.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e := model.CalendarEvent{
		ID: m.nextID, Title: p.Title, Description: p.Description,
		StartTime: p.StartTime, EndTime: p.EndTime, Location: p.Location, Status: p.Status,
	}
	m.events = append(m.events, e)
	return &e, nil
}

func (m *memEvents) Update(ctx context.Context, id int64, p model.EventParams) (*model.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.events {
		if m.events[i].ID == id {
			now := time.Now()
			m.events[i] = model.CalendarEvent{
				ID: id, Title: p.Title, Description: p.Description,
				StartTime: p.StartTime, EndTime: p.EndTime, Location: p.Location,
				Status: p.Status, UpdatedAt: &now,
			}
			e := m.events[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memEvents) Delete(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.events {
		if m.events[i].ID == id {
			deleted := m.events[i]
			m.events = append(m.events[:i], m.events[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

type memActivities struct {
	mu      sync.Mutex
	nextID  int64
	entries []model.Activity
	failing bool
}

func (m *memActivities) Create(ctx context.Context, p model.CreateActivityParams) (*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errors.New("activities table unavailable")
	}
	m.nextID++
	a := model.Activity{
		ID: m.nextID, UserID: p.UserID, UserName: p.UserName,
		Action: p.Action, Details: p.Details, CreatedAt: time.Now(),
	}
	m.entries = append(m.entries, a)
	return &a, nil
}

// newestFirst returns entries in reverse insertion order.
func (m *memActivities) newestFirst() []model.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Activity, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		out = append(out, m.entries[i])
	}
	return out
}

func (m *memActivities) FindRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	out := m.newestFirst()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memActivities) FindByUserID(ctx context.Context, userID int64) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range m.newestFirst() {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memActivities) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, a := range m.entries {
		out[i] = a.Action
	}
	return out
}

type memSupport struct {
	mu       sync.Mutex
	nextID   int64
	messages []model.SupportMessage
}

func (m *memSupport) Create(ctx context.Context, p model.CreateSupportMessageParams) (*model.SupportMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	msg := model.SupportMessage{
		ID: m.nextID, Category: p.Category, Priority: p.Priority, Subject: p.Subject,
		Message: p.Message, UserEmail: p.Email, Timestamp: time.Now(),
		UserAgent: p.UserAgent, CurrentPage: p.CurrentPage, Status: string(model.SupportStatusPending),
	}
	m.messages = append(m.messages, msg)
	return &msg, nil
}

func (m *memSupport) FindRecent(ctx context.Context, limit int) ([]model.SupportMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.SupportMessage(nil), m.messages...), nil
}

func (m *memSupport) UpdateStatus(ctx context.Context, id int64, p model.UpdateSupportMessageParams) (*model.SupportMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.messages {
		if m.messages[i].ID == id {
			now := time.Now()
			m.messages[i].Status = string(p.Status)
			m.messages[i].AdminResponse = p.AdminResponse
			m.messages[i].UpdatedAt = &now
			msg := m.messages[i]
			return &msg, nil
		}
	}
	return nil, nil
}

type fixedStats struct {
	counts model.DashboardCounts
}

func (f fixedStats) DashboardCounts(ctx context.Context) (*model.DashboardCounts, error) {
	c := f.counts
	return &c, nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func accountWithRole(role string) *model.SanitizedAccount {
	return &model.SanitizedAccount{
		ID:        42,
		FirstName: "Dana",
		LastName:  "Levi",
		Email:     "dana@ecodive.com",
		Role:      role,
	}
}

func withAccount(req *http.Request, account *model.SanitizedAccount) *http.Request {
	s := session.New(account, "test-token", time.Time{})
	return req.WithContext(session.WithSession(req.Context(), s))
}
