package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserAdminUseCase casos de uso de gestión de usuarios (solo admin):
// listado, alta directa y aprobación de cuentas auto-registradas.
type UserAdminUseCase struct {
	repo repository.UserRepository
}

// NewUserAdminUseCase construye el caso de uso con el puerto de persistencia.
func NewUserAdminUseCase(repo repository.UserRepository) *UserAdminUseCase {
	return &UserAdminUseCase{repo: repo}
}

// List lista todos los usuarios en orden alfabético por username.
func (uc *UserAdminUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *userToResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

// Create crea un usuario por el admin: el rol se elige explícitamente y la
// cuenta nace aprobada, a diferencia del registro público.
func (uc *UserAdminUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByUsername(username)
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
		Role:         role,
		IsApproved:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Approve aprueba una cuenta pendiente. Aprobar dos veces es no-op, no error.
func (uc *UserAdminUseCase) Approve(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsApproved {
		user.IsApproved = true
		user.UpdatedAt = time.Now()
		if err := uc.repo.Update(user); err != nil {
			return nil, err
		}
	}
	return userToResponse(user), nil
}

// AssignableRoles devuelve los roles que el admin puede asignar al crear usuarios.
func (uc *UserAdminUseCase) AssignableRoles() *dto.UserFormResponse {
	return &dto.UserFormResponse{
		Roles: []string{entity.RoleAdmin, entity.RoleTeamLead, entity.RoleUser},
	}
}

func userToResponse(u *entity.User) *dto.UserResponse {
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
