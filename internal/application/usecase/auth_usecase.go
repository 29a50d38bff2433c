package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
	"github.com/tu-usuario/rocketry-hub/pkg/config"
	jwtutil "github.com/tu-usuario/rocketry-hub/pkg/jwt"
)

// Roles válidos de usuario; "member" es el default.
var roles = []string{entity.RoleAdmin, entity.RoleLead, entity.RoleMember}

// AuthUseCase registro, login y perfil del usuario autenticado.
type AuthUseCase struct {
	users repository.UserRepository
	jwt   config.JWTConfig
	teams []string
}

func NewAuthUseCase(users repository.UserRepository, jwt config.JWTConfig, teams []string) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: jwt, teams: teams}
}

func (uc *AuthUseCase) defaultTeam() string {
	if len(uc.teams) == 0 {
		return ""
	}
	return uc.teams[0]
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Team:      u.Team,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register da de alta un usuario. El email debe ser único.
func (uc *AuthUseCase) Register(_ context.Context, in *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error al hashear contraseña: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Team:         validate.EnumFold(in.Team, uc.teams, uc.defaultTeam()),
		Role:         validate.Enum(in.Role, roles, entity.RoleMember),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, fmt.Errorf("error al crear usuario: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Login verifica credenciales y emite un token JWT.
// Credenciales inválidas retornan domain.ErrUnauthorized sin distinguir si el
// email existe.
func (uc *AuthUseCase) Login(_ context.Context, in *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwtutil.Generate(uc.jwt.Secret, user.ID, user.Team, user.Role, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, fmt.Errorf("error al generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(_ context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}
