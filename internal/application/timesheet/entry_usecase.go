package timesheet

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

// Formatos ISO-8601 aceptados para start_time/end_time. Los datetime-local de
// HTML llegan sin zona ni segundos, por eso los layouts sin offset.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// EntryUseCase flujo de registros de horas: alta, listados y aprobación.
type EntryUseCase struct {
	repo         repository.EntryRepository
	activityRepo repository.ActivityRepository
	teamRepo     repository.TeamRepository
}

// NewEntryUseCase construye el caso de uso con los puertos de persistencia.
func NewEntryUseCase(repo repository.EntryRepository, activityRepo repository.ActivityRepository, teamRepo repository.TeamRepository) *EntryUseCase {
	return &EntryUseCase{repo: repo, activityRepo: activityRepo, teamRepo: teamRepo}
}

// Create registra horas para el usuario autenticado. El project_id se deriva
// de la actividad elegida y duration_hours se calcula una sola vez aquí.
// El registro nace siempre sin aprobar, sin importar qué mande el caller.
// Una actividad inexistente es un fallo de validación, no un not-found.
func (uc *EntryUseCase) Create(userID string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	start, err := parseISOTime(in.StartTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := parseISOTime(in.EndTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.ActivityID == "" {
		return nil, domain.ErrInvalidInput
	}
	activity, err := uc.activityRepo.GetByID(in.ActivityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	entry := &entity.TimesheetEntry{
		ID:            uuid.New().String(),
		UserID:        userID,
		ProjectID:     activity.ProjectID,
		ActivityID:    activity.ID,
		StartTime:     start,
		EndTime:       end,
		DurationHours: entity.ComputeDurationHours(start, end),
		IsBillable:    in.IsBillable,
		Description:   in.Description,
		State:         entity.EntryStateStopped,
		Tags:          in.Tags,
		IsApproved:    false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return entryToResponse(entry), nil
}

// ListMine devuelve los registros propios del usuario, más recientes primero.
func (uc *EntryUseCase) ListMine(userID string) (*dto.EntryListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// ListPending devuelve todos los registros sin aprobar del sistema.
// La cola no está acotada al equipo del lead que consulta.
func (uc *EntryUseCase) ListPending() (*dto.EntryListResponse, error) {
	list, err := uc.repo.ListPending()
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// ListAll devuelve todos los registros del sistema.
func (uc *EntryUseCase) ListAll() (*dto.EntryListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// Approve marca un registro como aprobado. La transición es de un solo
// sentido y aprobar dos veces es no-op, no error. Cualquier team lead puede
// aprobar cualquier registro pendiente del sistema.
func (uc *EntryUseCase) Approve(id string) (*dto.EntryResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if !entry.IsApproved {
		entry.IsApproved = true
		entry.UpdatedAt = time.Now()
		if err := uc.repo.Update(entry); err != nil {
			return nil, err
		}
	}
	return entryToResponse(entry), nil
}

// TeamEntries devuelve los registros de los miembros actuales de un equipo,
// más recientes primero. Solo el lead de ese equipo puede consultarlos; a
// cualquier otro solicitante se le responde forbidden sin revelar si el
// equipo existe.
func (uc *EntryUseCase) TeamEntries(teamID, requesterID string) (*dto.EntryListResponse, error) {
	team, err := uc.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil || requesterID != team.LeadID {
		return nil, domain.ErrForbidden
	}
	memberIDs, err := uc.teamRepo.MemberIDs(teamID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUserIDs(memberIDs)
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// FormCandidates devuelve las actividades activas ofrecidas al registrar horas.
func (uc *EntryUseCase) FormCandidates() (*dto.EntryFormResponse, error) {
	activities, err := uc.activityRepo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, dto.ActivityResponse{
			ID:         a.ID,
			Name:       a.Name,
			ProjectID:  a.ProjectID,
			IsBillable: a.IsBillable,
			IsActive:   a.IsActive,
			CreatedAt:  a.CreatedAt,
			UpdatedAt:  a.UpdatedAt,
		})
	}
	return &dto.EntryFormResponse{Activities: items}, nil
}

func parseISOTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func entryToResponse(e *entity.TimesheetEntry) *dto.EntryResponse {
	if e == nil {
		return nil
	}
	return &dto.EntryResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		ProjectID:     e.ProjectID,
		ActivityID:    e.ActivityID,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		DurationHours: e.DurationHours,
		IsBillable:    e.IsBillable,
		Description:   e.Description,
		State:         e.State,
		Tags:          e.Tags,
		IsApproved:    e.IsApproved,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toListResponse(list []*entity.TimesheetEntry) *dto.EntryListResponse {
	items := make([]dto.EntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entryToResponse(e))
	}
	return &dto.EntryListResponse{Items: items}
}
