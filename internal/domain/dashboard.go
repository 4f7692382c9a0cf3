package domain

// DashboardStats is the read model behind the dashboard widgets.
// Counts are computed by scanning live collections at call time.
type DashboardStats struct {
	TotalCases     int `json:"totalCases"`
	TotalUsers     int `json:"totalUsers"`
	PendingCases   int `json:"pendingCases"`
	ResolvedCases  int `json:"resolvedCases"`
	ActiveDisputes int `json:"activeDisputes"`
	TotalReports   int `json:"totalReports"`
}
