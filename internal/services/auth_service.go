package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/utils"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
}

type AuthService interface {
	// Register creates the user and its role profile atomically.
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// AuthClaims is the token payload. Subject carries the user id; Role drives
// the role-gated route groups.
type AuthClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Email string `json:"email"`
}

type authService struct {
	users  pgrepo.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users pgrepo.UserRepository, secret []byte, ttl time.Duration) AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{users: users, secret: secret, ttl: ttl}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "AuthService.Register"

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email, and password are required", nil)
	}
	if !in.Role.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role must be JOB_SEEKER or JOB_PROVIDER", nil)
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}
	if exists {
		return nil, utils.E(utils.CodeConflict, op, "email is already registered", nil)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashed,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.CreateWithProfile(ctx, user); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if err := utils.CheckPassword(user.Password, password); err != nil {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}

	now := time.Now().UTC()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role:  string(user.Role),
		Email: user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return token, user, nil
}
