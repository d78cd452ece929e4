package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación de EntryRepository sobre PostgreSQL.
// Tabla: timesheet_entries (id, user_id FK, project_id FK, activity_id FK,
// start_time, end_time, duration_hours NUMERIC, is_billable, description,
// state, tags, is_approved, created_at, updated_at).
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

const entryColumns = `id, user_id, project_id, activity_id, start_time, end_time,
	duration_hours, is_billable, description, state, tags, is_approved, created_at, updated_at`

// Create persiste un nuevo registro de horas.
func (r *EntryRepo) Create(entry *entity.TimesheetEntry) error {
	query := `
		INSERT INTO timesheet_entries (id, user_id, project_id, activity_id, start_time, end_time,
			duration_hours, is_billable, description, state, tags, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.UserID, entry.ProjectID, entry.ActivityID, entry.StartTime, entry.EndTime,
		entry.DurationHours, entry.IsBillable, entry.Description, entry.State, entry.Tags,
		entry.IsApproved, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *EntryRepo) GetByID(id string) (*entity.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE id = $1`
	var e entity.TimesheetEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.ProjectID, &e.ActivityID, &e.StartTime, &e.EndTime,
		&e.DurationHours, &e.IsBillable, &e.Description, &e.State, &e.Tags,
		&e.IsApproved, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &e, nil
}

// Update actualiza un registro (en la práctica solo cambia is_approved).
func (r *EntryRepo) Update(entry *entity.TimesheetEntry) error {
	query := `
		UPDATE timesheet_entries
		SET is_billable = $2, description = $3, state = $4, tags = $5, is_approved = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.IsBillable, entry.Description, entry.State, entry.Tags,
		entry.IsApproved, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// ListByUser lista los registros propios de un usuario, más recientes primero.
func (r *EntryRepo) ListByUser(userID string) ([]*entity.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries
		WHERE user_id = $1 ORDER BY start_time DESC`
	return r.queryMany(query, []any{userID}, "list entries by user")
}

// ListPending lista los registros sin aprobar de todo el sistema.
func (r *EntryRepo) ListPending() ([]*entity.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries
		WHERE NOT is_approved ORDER BY start_time DESC`
	return r.queryMany(query, nil, "list pending entries")
}

// ListAll lista todos los registros del sistema.
func (r *EntryRepo) ListAll() ([]*entity.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries ORDER BY start_time DESC`
	return r.queryMany(query, nil, "list all entries")
}

// ListByUserIDs lista los registros cuyos dueños están en el conjunto dado.
// Un conjunto vacío devuelve lista vacía sin tocar la base.
func (r *EntryRepo) ListByUserIDs(userIDs []string) ([]*entity.TimesheetEntry, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries
		WHERE user_id = ANY($1) ORDER BY start_time DESC`
	return r.queryMany(query, []any{userIDs}, "list entries by user ids")
}

func (r *EntryRepo) queryMany(query string, args []any, op string) ([]*entity.TimesheetEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.TimesheetEntry
	for rows.Next() {
		var e entity.TimesheetEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ProjectID, &e.ActivityID, &e.StartTime, &e.EndTime,
			&e.DurationHours, &e.IsBillable, &e.Description, &e.State, &e.Tags,
			&e.IsApproved, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
