package postgres

import (
	"context"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const dashboardStatsQuery = `
SELECT
    (SELECT count(*) FROM projects),
    (SELECT count(*) FROM projects WHERE status = 'Active'),
    (SELECT count(*) FROM projects WHERE status = 'Completed'),
    (SELECT count(*) FROM projects WHERE status = 'On Hold'),
    (SELECT count(*) FROM tasks),
    (SELECT count(*) FROM tasks WHERE status = 'Pending'),
    (SELECT count(*) FROM tasks WHERE status = 'In Progress'),
    (SELECT count(*) FROM tasks WHERE status = 'Completed'),
    (SELECT count(*) FROM tasks WHERE priority = 'Urgent' AND status NOT IN ('Completed', 'Cancelled')),
    (SELECT count(*) FROM teams),
    (SELECT count(*) FROM users WHERE is_active = true)`

// DashboardStats returns the aggregate counts for the dashboard in one round trip.
func (p *Postgres) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	var s entities.DashboardStats
	err := p.db.QueryRow(ctx, dashboardStatsQuery).Scan(
		&s.TotalProjects, &s.ActiveProjects, &s.CompletedProjects, &s.OnHoldProjects,
		&s.TotalTasks, &s.PendingTasks, &s.InProgressTasks, &s.CompletedTasks, &s.UrgentTasks,
		&s.TotalTeams, &s.ActiveUsers,
	)
	if err != nil {
		return entities.DashboardStats{}, classify(err, "dashboard stats")
	}
	return s, nil
}
