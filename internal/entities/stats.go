package entities

// DashboardStats aggregates the counts shown on the dashboard.
type DashboardStats struct {
	TotalProjects     int64
	ActiveProjects    int64
	CompletedProjects int64
	OnHoldProjects    int64
	TotalTasks        int64
	PendingTasks      int64
	InProgressTasks   int64
	CompletedTasks    int64
	UrgentTasks       int64
	TotalTeams        int64
	ActiveUsers       int64
}
