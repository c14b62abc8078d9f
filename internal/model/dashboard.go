package model

// DashboardCounts is the raw tally behind the dashboard insights.
type DashboardCounts struct {
	TotalUsers        int `db:"total_users"`
	AdminCount        int `db:"admin_count"`
	ViewerCount       int `db:"viewer_count"`
	ClubsCount        int `db:"clubs_count"`
	EventsThisMonth   int `db:"events_this_month"`
	NewUsersThisMonth int `db:"new_users_this_month"`
	NewUsersLastMonth int `db:"new_users_last_month"`
}

// DashboardStats is the dashboard payload.
type DashboardStats struct {
	TotalUsers        int      `json:"totalUsers"`
	AdminCount        int      `json:"adminCount"`
	ViewerCount       int      `json:"viewerCount"`
	ClubsCount        int      `json:"clubsCount"`
	EventsThisMonth   int      `json:"eventsThisMonth"`
	NewUsersThisMonth int      `json:"newUsersThisMonth"`
	NewUsersLastMonth int      `json:"newUsersLastMonth"`
	Growth            float64  `json:"growth"`
	Insights          []string `json:"insights"`
}
