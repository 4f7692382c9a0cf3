package memory

import (
	"context"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// GetDashboardStats aggregates the headline counters in one snapshot.
// ActiveDisputes counts every dispute regardless of status; TotalReports
// counts alt-detection reports.
func (s *Store) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.DashboardStats{
		TotalCases:     s.cases.len(),
		TotalUsers:     s.users.len(),
		ActiveDisputes: s.disputes.len(),
		TotalReports:   s.altReports.len(),
	}
	for _, c := range s.cases.all() {
		switch c.Status {
		case domain.CaseStatusPending:
			stats.PendingCases++
		case domain.CaseStatusResolved:
			stats.ResolvedCases++
		}
	}
	return &stats, nil
}
