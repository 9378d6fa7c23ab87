package domain

import (
	"context"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

// Dashboard returns the aggregate counts for the dashboard.
func (u *Usecase) Dashboard(ctx context.Context) (entities.DashboardStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.DashboardStats(ctx)
}
