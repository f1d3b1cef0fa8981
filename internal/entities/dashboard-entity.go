package entities

// DashboardStats - агрегаты /dashboard/stats.
type DashboardStats struct {
	TotalEquipment     int `json:"total_equipment"`
	TotalTeams         int `json:"total_teams"`
	TotalRequests      int `json:"total_requests"`
	NewRequests        int `json:"new_requests"`
	InProgressRequests int `json:"in_progress_requests"`
	RepairedRequests   int `json:"repaired_requests"`
	CorrectiveRequests int `json:"corrective_requests"`
	PreventiveRequests int `json:"preventive_requests"`
}
