package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación de TeamRepository sobre PostgreSQL.
// Tablas: teams (id, name UNIQUE, lead_id FK nullable, created_at, updated_at)
// y team_members (team_id, user_id, PRIMARY KEY (team_id, user_id)).
type TeamRepo struct {
	q Querier
}

// NewTeamRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

// Create persiste un nuevo equipo. Un nombre repetido devuelve domain.ErrDuplicate.
func (r *TeamRepo) Create(team *entity.Team) error {
	query := `
		INSERT INTO teams (id, name, lead_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		team.ID, team.Name, nullableID(team.LeadID), team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *TeamRepo) GetByID(id string) (*entity.Team, error) {
	query := `SELECT id, name, lead_id, created_at, updated_at FROM teams WHERE id = $1`
	var t entity.Team
	var leadID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &leadID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	if leadID != nil {
		t.LeadID = *leadID
	}
	return &t, nil
}

// List lista todos los equipos en orden alfabético.
func (r *TeamRepo) List() ([]*entity.Team, error) {
	query := `SELECT id, name, lead_id, created_at, updated_at FROM teams ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()
	var list []*entity.Team
	for rows.Next() {
		var t entity.Team
		var leadID *string
		if err := rows.Scan(&t.ID, &t.Name, &leadID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		if leadID != nil {
			t.LeadID = *leadID
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina el equipo por ID (hard delete).
func (r *TeamRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

// RemoveAllMembers elimina todas las filas de membresía del equipo.
func (r *TeamRepo) RemoveAllMembers(teamID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM team_members WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("remove all members: %w", err)
	}
	return nil
}

// AddMember agrega un usuario al equipo. ON CONFLICT DO NOTHING: agregar a
// un miembro existente es idempotente.
func (r *TeamRepo) AddMember(teamID, userID string) error {
	query := `
		INSERT INTO team_members (team_id, user_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, teamID, userID)
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// RemoveMember quita un usuario del equipo. Quitar a un no-miembro es no-op.
func (r *TeamRepo) RemoveMember(teamID, userID string) error {
	query := `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`
	_, err := r.q.Exec(context.Background(), query, teamID, userID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

// ListMembers lista los usuarios miembros del equipo, ordenados por username.
func (r *TeamRepo) ListMembers(teamID string) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.role, u.is_approved, u.created_at, u.updated_at
		FROM users u
		JOIN team_members tm ON tm.user_id = u.id
		WHERE tm.team_id = $1
		ORDER BY u.username`
	rows, err := r.q.Query(context.Background(), query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// MemberIDs devuelve solo los IDs de los miembros actuales del equipo.
func (r *TeamRepo) MemberIDs(teamID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT user_id FROM team_members WHERE team_id = $1`, teamID)
	if err != nil {
		return nil, fmt.Errorf("member ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan member id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// nullableID convierte "" a NULL para columnas FK opcionales.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
