package usecase

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/errors"
	"portfolio/pkg/logger"
)

// AuthProvider is the slice of the identity backend the auth flows need.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
}

type AuthUseCase struct {
	authProvider AuthProvider
	userRepo     repository.UserRepository
}

func NewAuthUseCase(authProvider AuthProvider, userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		authProvider: authProvider,
		userRepo:     userRepo,
	}
}

type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name"`
}

// Register creates the identity-provider account and its companion user
// document. An empty display name falls back to the local part of the email.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = emailLocalPart(input.Email)
	}

	uid, err := uc.authProvider.CreateUser(ctx, input.Email, input.Password, displayName)
	if err != nil {
		logger.Error("Register: account creation for %s failed: %v", input.Email, err)
		return nil, errors.BadRequest("Could not create account", err)
	}

	user := &entity.User{
		ID:          uid,
		Email:       input.Email,
		DisplayName: displayName,
		Role:        "user",
		CreatedAt:   time.Now(),
		LastActive:  time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.Error("Register: user document for %s failed: %v", uid, err)
		return nil, err
	}

	logger.Info("Registered user %s (%s)", uid, input.Email)
	return user, nil
}

func (uc *AuthUseCase) GetMe(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

// VerifyToken resolves an ID token to the caller's uid.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, err := uc.authProvider.VerifyToken(ctx, token)
	if err != nil {
		return "", errors.Unauthorized("Invalid or expired token", err)
	}
	return uid, nil
}

// IsAdmin reports whether the uid's user document carries the admin role.
func (uc *AuthUseCase) IsAdmin(ctx context.Context, uid string) (bool, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}
	return user.Role == "admin", nil
}

// SetupAdmin bootstraps the single admin account from configuration. It is
// a one-shot operation; once a user document exists for the admin email it
// refuses to run again. An identity-provider account left over from a
// partial earlier run is reused rather than recreated. The returned token is
// a custom sign-in token for the freshly provisioned admin.
func (uc *AuthUseCase) SetupAdmin(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.BadRequest("Admin credentials are not configured", nil)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", errors.Conflict("Admin account already exists")
	}

	displayName := emailLocalPart(email)
	uid, err := uc.authProvider.GetUserByEmail(ctx, email)
	if err != nil {
		uid, err = uc.authProvider.CreateUser(ctx, email, password, displayName)
		if err != nil {
			logger.Error("SetupAdmin: account creation failed: %v", err)
			return nil, "", errors.Internal("Could not create admin account", err)
		}
	}

	admin := &entity.User{
		ID:          uid,
		Email:       email,
		DisplayName: displayName,
		Role:        "admin",
		CreatedAt:   time.Now(),
		LastActive:  time.Now(),
	}

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		logger.Error("SetupAdmin: user document failed: %v", err)
		return nil, "", err
	}

	token, err := uc.authProvider.GenerateToken(ctx, uid)
	if err != nil {
		logger.Warn("SetupAdmin: sign-in token for %s failed: %v", uid, err)
		token = ""
	}

	logger.Info("Admin account %s provisioned", uid)
	return admin, token, nil
}

// TouchLastActive best-effort refreshes the user's last-seen timestamp.
func (uc *AuthUseCase) TouchLastActive(ctx context.Context, uid string) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return
	}
	user.LastActive = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Debug("TouchLastActive for %s failed: %v", uid, err)
	}
}

func emailLocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
