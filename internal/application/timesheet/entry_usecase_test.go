package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/application/timesheet"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeEntryRepo struct {
	entries map[string]*entity.TimesheetEntry
	updates int
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*entity.TimesheetEntry)}
}

func (r *fakeEntryRepo) Create(e *entity.TimesheetEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) GetByID(id string) (*entity.TimesheetEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntryRepo) Update(e *entity.TimesheetEntry) error {
	r.updates++
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) ListByUser(userID string) ([]*entity.TimesheetEntry, error) {
	var out []*entity.TimesheetEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) ListPending() ([]*entity.TimesheetEntry, error) {
	var out []*entity.TimesheetEntry
	for _, e := range r.entries {
		if !e.IsApproved {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) ListAll() ([]*entity.TimesheetEntry, error) {
	var out []*entity.TimesheetEntry
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEntryRepo) ListByUserIDs(userIDs []string) ([]*entity.TimesheetEntry, error) {
	set := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		set[id] = true
	}
	var out []*entity.TimesheetEntry
	for _, e := range r.entries {
		if set[e.UserID] {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	activities map[string]*entity.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[string]*entity.Activity)}
}

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	r.activities[a.ID] = a
	return nil
}

func (r *fakeActivityRepo) GetByID(id string) (*entity.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *fakeActivityRepo) List() ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range r.activities {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeActivityRepo) ListActive() ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range r.activities {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeTeamRepo struct {
	teams   map[string]*entity.Team
	members map[string][]string // teamID -> userIDs
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:   make(map[string]*entity.Team),
		members: make(map[string][]string),
	}
}

func (r *fakeTeamRepo) Create(t *entity.Team) error { r.teams[t.ID] = t; return nil }

func (r *fakeTeamRepo) GetByID(id string) (*entity.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTeamRepo) List() ([]*entity.Team, error) {
	var out []*entity.Team
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTeamRepo) Delete(id string) error { delete(r.teams, id); return nil }

func (r *fakeTeamRepo) RemoveAllMembers(teamID string) error {
	delete(r.members, teamID)
	return nil
}

func (r *fakeTeamRepo) AddMember(teamID, userID string) error {
	for _, id := range r.members[teamID] {
		if id == userID {
			return nil
		}
	}
	r.members[teamID] = append(r.members[teamID], userID)
	return nil
}

func (r *fakeTeamRepo) RemoveMember(teamID, userID string) error {
	out := r.members[teamID][:0]
	for _, id := range r.members[teamID] {
		if id != userID {
			out = append(out, id)
		}
	}
	r.members[teamID] = out
	return nil
}

func (r *fakeTeamRepo) ListMembers(teamID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range r.members[teamID] {
		out = append(out, &entity.User{ID: id})
	}
	return out, nil
}

func (r *fakeTeamRepo) MemberIDs(teamID string) ([]string, error) {
	return r.members[teamID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	userAna    = "user-ana"
	userBruno  = "user-bruno"
	leadCarla  = "lead-carla"
	activityID = "act-dev"
)

func buildUseCase() (*timesheet.EntryUseCase, *fakeEntryRepo, *fakeActivityRepo, *fakeTeamRepo) {
	entryRepo := newFakeEntryRepo()
	activityRepo := newFakeActivityRepo()
	teamRepo := newFakeTeamRepo()
	activityRepo.activities[activityID] = &entity.Activity{
		ID:         activityID,
		Name:       "Desarrollo",
		ProjectID:  "proj-web",
		IsBillable: true,
		IsActive:   true,
	}
	return timesheet.NewEntryUseCase(entryRepo, activityRepo, teamRepo), entryRepo, activityRepo, teamRepo
}

func validRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		StartTime:   "2025-03-10T09:00",
		EndTime:     "2025-03-10T11:30",
		ActivityID:  activityID,
		Description: "maquetado de la vista de reportes",
		IsBillable:  true,
		Tags:        "frontend",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RegistroNaceSinAprobar(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	out, err := uc.Create(userAna, validRequest())
	require.NoError(t, err)

	assert.False(t, out.IsApproved, "todo registro nuevo debe nacer sin aprobar")
	assert.Equal(t, userAna, out.UserID)
	assert.Equal(t, entity.EntryStateStopped, out.State)
}

func TestCreate_DuracionYProyectoDerivados(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	out, err := uc.Create(userAna, validRequest())
	require.NoError(t, err)

	assert.Equal(t, 2.5, out.DurationHours, "09:00 a 11:30 son 2.5 horas")
	assert.Equal(t, "proj-web", out.ProjectID,
		"el proyecto se deriva de la actividad, no del request")
}

func TestCreate_FinAntesDeInicio_SeAceptaNegativo(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	in := validRequest()
	in.StartTime = "2025-03-10T11:30"
	in.EndTime = "2025-03-10T09:00"

	out, err := uc.Create(userAna, in)
	require.NoError(t, err)
	assert.Equal(t, -2.5, out.DurationHours)
}

func TestCreate_TiempoInvalidoEsValidacion(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	in := validRequest()
	in.StartTime = "ayer a las nueve"

	_, err := uc.Create(userAna, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ActividadInexistenteEsValidacion(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	in := validRequest()
	in.ActivityID = "act-no-existe"

	_, err := uc.Create(userAna, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una actividad inexistente es un fallo de validación, no un not-found")
}

func TestCreate_AceptaFormatosISO(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	for _, pair := range [][2]string{
		{"2025-03-10T09:00:00Z", "2025-03-10T10:00:00Z"},
		{"2025-03-10T09:00:00", "2025-03-10T10:00:00"},
		{"2025-03-10T09:00", "2025-03-10T10:00"},
	} {
		in := validRequest()
		in.StartTime = pair[0]
		in.EndTime = pair[1]
		out, err := uc.Create(userAna, in)
		require.NoError(t, err, "formato %q debe aceptarse", pair[0])
		assert.Equal(t, 1.0, out.DurationHours)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_TransicionUnSentido(t *testing.T) {
	uc, repo, _, _ := buildUseCase()
	created, err := uc.Create(userAna, validRequest())
	require.NoError(t, err)

	out, err := uc.Approve(created.ID)
	require.NoError(t, err)
	assert.True(t, out.IsApproved)
	assert.Equal(t, 1, repo.updates)
}

func TestApprove_Idempotente(t *testing.T) {
	uc, repo, _, _ := buildUseCase()
	created, err := uc.Create(userAna, validRequest())
	require.NoError(t, err)

	_, err = uc.Approve(created.ID)
	require.NoError(t, err)
	out, err := uc.Approve(created.ID)
	require.NoError(t, err)

	assert.True(t, out.IsApproved)
	assert.Equal(t, 1, repo.updates, "aprobar dos veces no debe re-persistir")
}

func TestApprove_NoExisteEsNotFound(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	_, err := uc.Approve("entry-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListMine_SoloRegistrosPropios(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	_, err := uc.Create(userAna, validRequest())
	require.NoError(t, err)
	_, err = uc.Create(userBruno, validRequest())
	require.NoError(t, err)

	out, err := uc.ListMine(userAna)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, userAna, out.Items[0].UserID)
}

func TestListPending_ExcluyeAprobados(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	first, err := uc.Create(userAna, validRequest())
	require.NoError(t, err)
	_, err = uc.Create(userBruno, validRequest())
	require.NoError(t, err)

	_, err = uc.Approve(first.ID)
	require.NoError(t, err)

	out, err := uc.ListPending()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, userBruno, out.Items[0].UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// TeamEntries — acotado al lead del equipo
// ──────────────────────────────────────────────────────────────────────────────

func TestTeamEntries_SoloMiembrosActuales(t *testing.T) {
	uc, _, _, teamRepo := buildUseCase()
	teamRepo.teams["team-web"] = &entity.Team{ID: "team-web", Name: "Web", LeadID: leadCarla}
	require.NoError(t, teamRepo.AddMember("team-web", userAna))

	_, err := uc.Create(userAna, validRequest())
	require.NoError(t, err)
	_, err = uc.Create(userBruno, validRequest()) // no es miembro
	require.NoError(t, err)

	out, err := uc.TeamEntries("team-web", leadCarla)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, userAna, out.Items[0].UserID)
}

func TestTeamEntries_OtroLeadRecibeForbidden(t *testing.T) {
	uc, _, _, teamRepo := buildUseCase()
	teamRepo.teams["team-web"] = &entity.Team{ID: "team-web", Name: "Web", LeadID: leadCarla}

	_, err := uc.TeamEntries("team-web", "lead-otro")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTeamEntries_EquipoInexistenteTambienForbidden(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	// No se revela si el equipo existe: mismo error que para un lead ajeno.
	_, err := uc.TeamEntries("team-fantasma", leadCarla)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTeamEntries_EquipoSinMiembrosListaVacia(t *testing.T) {
	uc, _, _, teamRepo := buildUseCase()
	teamRepo.teams["team-web"] = &entity.Team{ID: "team-web", Name: "Web", LeadID: leadCarla}

	out, err := uc.TeamEntries("team-web", leadCarla)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// FormCandidates
// ──────────────────────────────────────────────────────────────────────────────

func TestFormCandidates_SoloActividadesActivas(t *testing.T) {
	uc, _, activityRepo, _ := buildUseCase()
	activityRepo.activities["act-off"] = &entity.Activity{
		ID:        "act-off",
		Name:      "Actividad retirada",
		ProjectID: "proj-web",
		IsActive:  false,
		CreatedAt: time.Now(),
	}

	out, err := uc.FormCandidates()
	require.NoError(t, err)
	require.Len(t, out.Activities, 1)
	assert.Equal(t, activityID, out.Activities[0].ID)
}
