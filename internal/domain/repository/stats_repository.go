package repository

import "github.com/shopspring/decimal"

// DashboardTotals agrega los contadores del panel de administración.
// BillableHours es la suma de duration_hours de registros facturables aprobados
// (NUMERIC en la base; se mapea a decimal para no acumular error binario).
type DashboardTotals struct {
	TotalUsers     int
	PendingUsers   int
	TotalEntries   int
	PendingEntries int
	BillableHours  decimal.Decimal
}

// StatsRepository define el puerto de consultas agregadas para dashboards.
type StatsRepository interface {
	GetDashboardTotals() (*DashboardTotals, error)
}
