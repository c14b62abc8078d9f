package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
)

type DashboardService struct {
	stats repository.StatsRepository
}

func NewDashboardService(stats repository.StatsRepository) *DashboardService {
	return &DashboardService{stats: stats}
}

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	counts, err := s.stats.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}

	growth := userGrowth(counts.NewUsersThisMonth, counts.NewUsersLastMonth)

	return &model.DashboardStats{
		TotalUsers:        counts.TotalUsers,
		AdminCount:        counts.AdminCount,
		ViewerCount:       counts.ViewerCount,
		ClubsCount:        counts.ClubsCount,
		EventsThisMonth:   counts.EventsThisMonth,
		NewUsersThisMonth: counts.NewUsersThisMonth,
		NewUsersLastMonth: counts.NewUsersLastMonth,
		Growth:            growth,
		Insights:          insights(counts, growth),
	}, nil
}

// userGrowth is the month-over-month change in percent, rounded to one
// decimal. An empty previous month counts as one user.
func userGrowth(thisMonth, lastMonth int) float64 {
	base := math.Max(1, float64(lastMonth))
	pct := float64(thisMonth-lastMonth) / base * 100
	return math.Round(pct*10) / 10
}

func insights(c *model.DashboardCounts, growth float64) []string {
	trend := formatPercent(math.Abs(growth)) + "% less"
	if growth > 0 {
		trend = formatPercent(growth) + "% more"
	}

	return []string{
		fmt.Sprintf("There are %d Users. ", c.TotalUsers),
		fmt.Sprintf("There are %d admins and %d viewers in this Team. ", c.AdminCount, c.ViewerCount),
		fmt.Sprintf("There are %d Dive Clubs in the system. ", c.ClubsCount),
		fmt.Sprintf("This month you had %d new users, %s than last month.", c.NewUsersThisMonth, trend),
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
