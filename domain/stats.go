package domain

// TaskStats aggregates per-user task counts for the dashboard. The JSON keys
// are part of the public contract.
type TaskStats struct {
	TotalTasks        int `json:"totalTasks"`
	CompletedTasks    int `json:"completedTasks"`
	PendingTasks      int `json:"pendingTasks"`
	HighPriorityTasks int `json:"highPriorityTasks"`
	OverdueTasks      int `json:"overdueTasks"`
}
