package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ComputeDurationHours — la duración es la diferencia fin - inicio en horas
// fraccionarias, calculada una sola vez al crear el registro.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDurationHours_JornadaParcial(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC)

	assert.Equal(t, 2.5, entity.ComputeDurationHours(start, end),
		"de 09:00 a 11:30 deben ser 2.5 horas")
}

func TestComputeDurationHours_MismoInstanteEsCero(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, entity.ComputeDurationHours(at, at))
}

func TestComputeDurationHours_CruzaMedianoche(t *testing.T) {
	start := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, 4.0, entity.ComputeDurationHours(start, end))
}

// Un fin anterior al inicio produce una duración negativa: el valor se
// almacena tal cual, sin rechazo ni ajuste.
func TestComputeDurationHours_FinAntesDeInicioEsNegativa(t *testing.T) {
	start := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, -2.0, entity.ComputeDurationHours(start, end))
}

func TestComputeDurationHours_MinutosFraccionarios(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	assert.InDelta(t, 0.75, entity.ComputeDurationHours(start, end), 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseRole — enum cerrado de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestParseRole_RolesConocidos(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleTeamLead, entity.RoleUser} {
		got, ok := entity.ParseRole(role)
		assert.True(t, ok, "el rol %s debe reconocerse", role)
		assert.Equal(t, role, got)
	}
}

func TestParseRole_RolDesconocidoRechazado(t *testing.T) {
	for _, raw := range []string{"", "ROLE_SUPERADMIN", "admin", "role_user"} {
		_, ok := entity.ParseRole(raw)
		assert.False(t, ok, "el valor %q no debe reconocerse como rol", raw)
	}
}
