package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas para el panel de administración.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetDashboardTotals devuelve los contadores del panel admin en una sola
// pasada. duration_hours es NUMERIC; el SUM llega como decimal gracias al
// codec registrado en el pool.
func (r *StatsRepo) GetDashboardTotals() (*repository.DashboardTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE NOT is_approved),
			(SELECT COUNT(*) FROM timesheet_entries),
			(SELECT COUNT(*) FROM timesheet_entries WHERE NOT is_approved),
			(SELECT COALESCE(SUM(duration_hours), 0) FROM timesheet_entries WHERE is_billable AND is_approved)`
	var t repository.DashboardTotals
	var billable decimal.Decimal
	err := r.q.QueryRow(context.Background(), query).Scan(
		&t.TotalUsers, &t.PendingUsers, &t.TotalEntries, &t.PendingEntries, &billable,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}
	t.BillableHours = billable
	return &t, nil
}
