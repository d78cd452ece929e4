package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación de ActivityRepository sobre PostgreSQL.
// Tabla: activities (id, name, project_id FK, is_billable, is_active, created_at, updated_at).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create persiste una nueva actividad.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, name, project_id, is_billable, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		activity.ID, activity.Name, activity.ProjectID, activity.IsBillable, activity.IsActive,
		activity.CreatedAt, activity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// GetByID obtiene una actividad por ID.
func (r *ActivityRepo) GetByID(id string) (*entity.Activity, error) {
	query := `
		SELECT id, name, project_id, is_billable, is_active, created_at, updated_at
		FROM activities WHERE id = $1`
	var a entity.Activity
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.ProjectID, &a.IsBillable, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &a, nil
}

// List lista todas las actividades en orden alfabético.
func (r *ActivityRepo) List() ([]*entity.Activity, error) {
	query := `
		SELECT id, name, project_id, is_billable, is_active, created_at, updated_at
		FROM activities ORDER BY name`
	return r.queryMany(query, "list activities")
}

// ListActive lista solo las actividades activas, candidatas para registros nuevos.
func (r *ActivityRepo) ListActive() ([]*entity.Activity, error) {
	query := `
		SELECT id, name, project_id, is_billable, is_active, created_at, updated_at
		FROM activities WHERE is_active ORDER BY name`
	return r.queryMany(query, "list active activities")
}

func (r *ActivityRepo) queryMany(query string, op string) ([]*entity.Activity, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.ProjectID, &a.IsBillable, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
