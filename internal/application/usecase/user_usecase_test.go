package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/application/usecase"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Create — alta directa por el admin
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_NaceAprobadoConRolElegido(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserAdminUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Username: "carla",
		Password: "s3creta",
		Role:     entity.RoleTeamLead,
	})
	require.NoError(t, err)

	assert.True(t, out.IsApproved, "las altas del admin nacen aprobadas")
	assert.Equal(t, entity.RoleTeamLead, out.Role)
}

func TestUserCreate_RolDesconocidoRechazado(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserAdminUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Username: "carla",
		Password: "s3creta",
		Role:     "ROLE_SUPERADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_UsernameDuplicadoRechazado(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserAdminUseCase(repo)
	seedUser(repo, "carla", entity.RoleUser, true)

	_, err := uc.Create(dto.CreateUserRequest{
		Username: "carla",
		Password: "s3creta",
		Role:     entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve
// ──────────────────────────────────────────────────────────────────────────────

func TestUserApprove_ApruebaCuentaPendiente(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserAdminUseCase(repo)
	seedUser(repo, "ana", entity.RoleUser, false)

	out, err := uc.Approve("ana")
	require.NoError(t, err)
	assert.True(t, out.IsApproved)
}

func TestUserApprove_Idempotente(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserAdminUseCase(repo)
	seedUser(repo, "ana", entity.RoleUser, true)

	out, err := uc.Approve("ana")
	require.NoError(t, err)
	assert.True(t, out.IsApproved, "aprobar una cuenta ya aprobada es no-op")
}

func TestUserApprove_InexistenteEsNotFound(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserAdminUseCase(repo)

	_, err := uc.Approve("nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AssignableRoles
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignableRoles_ConjuntoCerrado(t *testing.T) {
	uc := usecase.NewUserAdminUseCase(newMemUserRepo())

	out := uc.AssignableRoles()
	assert.Equal(t,
		[]string{entity.RoleAdmin, entity.RoleTeamLead, entity.RoleUser},
		out.Roles)
}
