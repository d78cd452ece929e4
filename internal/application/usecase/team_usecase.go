package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

// TeamTxRunner ejecuta un callback con un TeamRepository atado a una
// transacción, para que el borrado de equipo y de su membresía sea atómico.
type TeamTxRunner interface {
	Run(ctx context.Context, fn func(teamRepo repository.TeamRepository) error) error
}

// TeamUseCase casos de uso de equipos: alta, borrado, membresía.
type TeamUseCase struct {
	repo     repository.TeamRepository
	userRepo repository.UserRepository
	tx       TeamTxRunner
}

// NewTeamUseCase construye el caso de uso con los puertos de persistencia.
func NewTeamUseCase(repo repository.TeamRepository, userRepo repository.UserRepository, tx TeamTxRunner) *TeamUseCase {
	return &TeamUseCase{repo: repo, userRepo: userRepo, tx: tx}
}

// List lista todos los equipos en orden alfabético.
func (uc *TeamUseCase) List() (*dto.TeamListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TeamResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *teamToResponse(t))
	}
	return &dto.TeamListResponse{Items: items}, nil
}

// Create crea un equipo. El lead debe existir y ser un ROLE_TEAMLEAD aprobado;
// un nombre duplicado surge como domain.ErrDuplicate desde el constraint único.
func (uc *TeamUseCase) Create(in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.LeadID == "" {
		return nil, domain.ErrInvalidInput
	}
	lead, err := uc.userRepo.GetByID(in.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil || lead.Role != entity.RoleTeamLead || !lead.IsApproved {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	team := &entity.Team{
		ID:        uuid.New().String(),
		Name:      name,
		LeadID:    lead.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(team); err != nil {
		return nil, err
	}
	return teamToResponse(team), nil
}

// Delete elimina el equipo y sus filas de membresía en una transacción.
// Los datos de clientes, proyectos, actividades y registros no se tocan.
func (uc *TeamUseCase) Delete(ctx context.Context, id string) error {
	team, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if team == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(teamRepo repository.TeamRepository) error {
		if err := teamRepo.RemoveAllMembers(id); err != nil {
			return err
		}
		return teamRepo.Delete(id)
	})
}

// Members devuelve la vista de membresía de un equipo: miembros actuales y
// candidatos disponibles. Accesible para el admin o para el lead del equipo;
// cualquier otro solicitante recibe domain.ErrForbidden sin revelar si el
// equipo existe.
func (uc *TeamUseCase) Members(teamID, requesterID, requesterRole string) (*dto.TeamMembersResponse, error) {
	team, err := uc.repo.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	isAdmin := requesterRole == entity.RoleAdmin
	if team == nil {
		if isAdmin {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrForbidden
	}
	if !isAdmin && requesterID != team.LeadID {
		return nil, domain.ErrForbidden
	}
	members, err := uc.repo.ListMembers(teamID)
	if err != nil {
		return nil, err
	}
	available, err := uc.userRepo.ListAvailableForTeam(teamID)
	if err != nil {
		return nil, err
	}
	out := &dto.TeamMembersResponse{
		Team:      *teamToResponse(team),
		Members:   make([]dto.UserResponse, 0, len(members)),
		Available: make([]dto.UserResponse, 0, len(available)),
	}
	for _, m := range members {
		out.Members = append(out.Members, *userToResponse(m))
	}
	for _, a := range available {
		out.Available = append(out.Available, *userToResponse(a))
	}
	return out, nil
}

// AddMember agrega un usuario al equipo. Idempotente si ya era miembro.
func (uc *TeamUseCase) AddMember(teamID, userID string) error {
	team, err := uc.repo.GetByID(teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.AddMember(teamID, userID)
}

// RemoveMember quita un usuario del equipo. No-op si no era miembro.
func (uc *TeamUseCase) RemoveMember(teamID, userID string) error {
	team, err := uc.repo.GetByID(teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.RemoveMember(teamID, userID)
}

// FormCandidates devuelve los ROLE_TEAMLEAD aprobados, candidatos a lead.
func (uc *TeamUseCase) FormCandidates() (*dto.TeamFormResponse, error) {
	leads, err := uc.userRepo.ListLeadCandidates()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, *userToResponse(l))
	}
	return &dto.TeamFormResponse{Leads: items}, nil
}

func teamToResponse(t *entity.Team) *dto.TeamResponse {
	if t == nil {
		return nil
	}
	return &dto.TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		LeadID:    t.LeadID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
