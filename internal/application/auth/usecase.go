package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
	"github.com/tu-usuario/timesheet-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta auto-registrada: recorta el username, hashea el
// password con bcrypt y persiste con rol ROLE_USER sin aprobar. No inicia
// sesión; la cuenta queda a la espera de aprobación del admin.
// Devuelve domain.ErrUsernameAlreadyExists si el username ya existe (match
// exacto, case-sensitive, contra el valor almacenado).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUsername(username)
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsApproved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, exige cuenta aprobada, genera JWT y
// retorna token + usuario + ruta de dashboard según el rol.
// Una cuenta sin aprobar devuelve domain.ErrPendingApproval sin autenticar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsApproved {
		return nil, domain.ErrPendingApproval
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Redirect: RedirectForRole(user.Role),
		User:     *toUserResponse(user),
	}, nil
}

// RedirectForRole devuelve la ruta de dashboard para un rol.
func RedirectForRole(role string) string {
	switch role {
	case entity.RoleAdmin:
		return "/admin"
	case entity.RoleTeamLead:
		return "/lead"
	default:
		return "/dashboard"
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
