package report

import (
	"context"

	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

// TeamReportUseCase arma el reporte PDF de las horas de un equipo, el
// documento de cierre que el lead presenta para facturación.
type TeamReportUseCase struct {
	teamRepo     repository.TeamRepository
	userRepo     repository.UserRepository
	entryRepo    repository.EntryRepository
	projectRepo  repository.ProjectRepository
	activityRepo repository.ActivityRepository
	gen          TeamReportGenerator
}

// NewTeamReportUseCase construye el caso de uso con los puertos necesarios.
func NewTeamReportUseCase(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	projectRepo repository.ProjectRepository,
	activityRepo repository.ActivityRepository,
	gen TeamReportGenerator,
) *TeamReportUseCase {
	return &TeamReportUseCase{
		teamRepo:     teamRepo,
		userRepo:     userRepo,
		entryRepo:    entryRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
		gen:          gen,
	}
}

// GenerateTeamReport genera el PDF del equipo. Accesible para el admin o para
// el lead del equipo; a cualquier otro solicitante se le responde forbidden
// sin revelar si el equipo existe.
func (uc *TeamReportUseCase) GenerateTeamReport(ctx context.Context, teamID, requesterID, requesterRole string) ([]byte, error) {
	team, err := uc.teamRepo.GetByID(teamID)
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

	members, err := uc.teamRepo.ListMembers(teamID)
	if err != nil {
		return nil, err
	}
	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}
	entries, err := uc.entryRepo.ListByUserIDs(memberIDs)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.List()
	if err != nil {
		return nil, err
	}
	activities, err := uc.activityRepo.List()
	if err != nil {
		return nil, err
	}

	var lead *entity.User
	if team.LeadID != "" {
		lead, err = uc.userRepo.GetByID(team.LeadID)
		if err != nil {
			return nil, err
		}
	}

	rows := buildRows(entries, indexUsers(members), indexProjects(projects), indexActivities(activities))
	return uc.gen.GenerateTeamReport(ctx, team, lead, rows)
}
