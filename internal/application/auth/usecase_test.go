package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/timesheet-pro/internal/application/auth"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID       map[string]*entity.User
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[string]*entity.User),
		byUsername: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListLeadCandidates() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.Role == entity.RoleTeamLead && u.IsApproved {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListAvailableForTeam(teamID string) ([]*entity.User, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testCfg = auth.JWTConfig{
	Secret:     "secret-para-tests",
	ExpMinutes: 60,
	Issuer:     "timesheet-pro-test",
}

func seedApproved(t *testing.T, repo *fakeUserRepo, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsApproved:   true,
	}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NaceSinAprobarConRolUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	out, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "s3creta"})
	require.NoError(t, err)

	assert.False(t, out.IsApproved, "el auto-registro nunca nace aprobado")
	assert.Equal(t, entity.RoleUser, out.Role, "el auto-registro siempre es ROLE_USER")
}

func TestRegister_RecortaEspaciosDelUsername(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	out, err := uc.Register(dto.RegisterRequest{Username: "  ana  ", Password: "s3creta"})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)
}

func TestRegister_PasswordNuncaEnPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	out, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "s3creta"})
	require.NoError(t, err)

	stored := repo.byID[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3creta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3creta")),
		"el hash almacenado debe verificar contra el password original")
}

func TestRegister_UsernameDuplicadoRechazado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "s3creta"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegister_CamposVaciosSonValidacion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	_, err := uc.Register(dto.RegisterRequest{Username: "   ", Password: "s3creta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Username: "ana", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoDevuelveTokenYRedirect(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)
	seedApproved(t, repo, "carla", "s3creta", entity.RoleTeamLead)

	out, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "s3creta"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "/lead", out.Redirect)
	assert.Equal(t, "carla", out.User.Username)
}

func TestLogin_PasswordIncorrectoEsUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)
	seedApproved(t, repo, "carla", "s3creta", entity.RoleUser)

	_, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "s3creta"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaSinAprobarRechazada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	// Registro público: queda pendiente de aprobación.
	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "s3creta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "s3creta"})
	assert.ErrorIs(t, err, domain.ErrPendingApproval,
		"una cuenta sin aprobar no debe poder autenticarse ni con credenciales correctas")
}

// ──────────────────────────────────────────────────────────────────────────────
// RedirectForRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRedirectForRole_PorRol(t *testing.T) {
	assert.Equal(t, "/admin", auth.RedirectForRole(entity.RoleAdmin))
	assert.Equal(t, "/lead", auth.RedirectForRole(entity.RoleTeamLead))
	assert.Equal(t, "/dashboard", auth.RedirectForRole(entity.RoleUser))
	assert.Equal(t, "/dashboard", auth.RedirectForRole(""), "rol desconocido cae al dashboard de usuario")
}
