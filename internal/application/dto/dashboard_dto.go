package dto

// DashboardResponse datos del panel según el rol del usuario autenticado.
// Stats solo se llena para el panel de administración.
type DashboardResponse struct {
	User  UserResponse    `json:"user"`
	Stats *DashboardStats `json:"stats,omitempty"`
}

// DashboardStats totales agregados para el panel de administración.
// BillableHours se serializa como string para no perder precisión decimal.
type DashboardStats struct {
	TotalUsers     int    `json:"total_users"`
	PendingUsers   int    `json:"pending_users"`
	TotalEntries   int    `json:"total_entries"`
	PendingEntries int    `json:"pending_entries"`
	BillableHours  string `json:"billable_hours"`
}
