package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/config"
	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/repository"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	Name     string
	LastName string
	Phone    string
	Password string
	Email    string
}

// UpdateProfileInput carries a partial profile update. Nil fields are
// left untouched; password and role are not reachable through here.
type UpdateProfileInput struct {
	Name     *string
	LastName *string
	Phone    *string
	Email    *string
}

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLHour),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. The returned projection never
// contains the password hash.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error) {
	if input.Name == "" || input.LastName == "" || input.Phone == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("name, lastName, phone and password are required", nil)
	}
	if err := auth.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	// Best-effort pre-check; the unique index on phone is the authority
	// and keeps a retried registration from creating a duplicate.
	if _, err := s.users.GetByPhone(ctx, input.Phone); err == nil {
		return nil, apperrors.NewConflict("phone number already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         input.Name,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Phone: user.Phone,
		Name:  user.Name,
	})

	public := user.Public()
	return &public, nil
}

// Login authenticates by phone and password and issues a session token.
func (s *AuthService) Login(ctx context.Context, phone, password string) (string, time.Time, *domain.PublicUser, error) {
	if phone == "" || password == "" {
		return "", time.Time{}, nil, apperrors.NewValidationError("phone and password are required", nil)
	}

	user, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, nil, apperrors.NewNotFound("user", nil)
		}
		return "", time.Time{}, nil, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, nil, apperrors.NewAuthenticationError("invalid credentials")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return "", time.Time{}, nil, apperrors.NewInternalError(err)
	}

	public := user.Public()
	return token, expiresAt, &public, nil
}

// Profile fetches the public projection of the subject.
func (s *AuthService) Profile(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	public := user.Public()
	return &public, nil
}

// UpdateProfile applies a partial update and returns the refreshed projection.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Email != nil {
		user.Email = *input.Email
	}

	if user.Name == "" || user.LastName == "" || user.Phone == "" {
		return nil, apperrors.NewValidationError("name, lastName and phone must not be empty", nil)
	}

	if input.Phone != nil {
		existing, err := s.users.GetByPhone(ctx, user.Phone)
		if err == nil && existing.ID != user.ID {
			return nil, apperrors.NewConflict("phone number already registered", nil)
		} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInternalError(err)
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}

	public := user.Public()
	return &public, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
