package model

type SupportStatus string

const (
	SupportStatusPending    SupportStatus = "pending"
	SupportStatusInProgress SupportStatus = "in_progress"
	SupportStatusResolved   SupportStatus = "resolved"
	SupportStatusClosed     SupportStatus = "closed"
)

var SupportStatuses = []string{
	string(SupportStatusPending),
	string(SupportStatusInProgress),
	string(SupportStatusResolved),
	string(SupportStatusClosed),
}

const (
	EventStatusConfirmed = "confirmed"
	EventStatusTentative = "tentative"
	EventStatusCancelled = "cancelled"
)

// Activity actions written to the audit trail.
const (
	ActionUserLogin         = "User Login"
	ActionCreatedEvent      = "Created Event"
	ActionUpdatedEvent      = "Updated Event"
	ActionDeletedEvent      = "Deleted Event"
	ActionAddedDiveClub     = "Added Dive Club"
	ActionUpdatedDiveClub   = "Updated Dive Club"
	ActionDeletedDiveClub   = "Deleted Dive Club"
	ActionAddedTeamMember   = "Added Team Member"
	ActionUpdatedTeamMember = "Updated Team Member"
	ActionDeletedTeamMember = "Deleted Team Member"
	ActionAddedUser         = "Added User"
	ActionUpdatedUser       = "Updated User"
	ActionDeletedUser       = "Deleted User"
)
