package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/pkg/errors"
)

func TestRegisterDefaultsDisplayName(t *testing.T) {
	uc := NewAuthUseCase(newFakeAuthProvider(), newFakeUserRepo())

	user, err := uc.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.DisplayName)
	assert.Equal(t, "user", user.Role)
}

func TestRegisterKeepsGivenDisplayName(t *testing.T) {
	uc := NewAuthUseCase(newFakeAuthProvider(), newFakeUserRepo())

	user, err := uc.Register(context.Background(), RegisterInput{
		Email:       "alice@example.com",
		Password:    "secret123",
		DisplayName: "Alice Cooper",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", user.DisplayName)
}

func TestSetupAdminIsOneShot(t *testing.T) {
	uc := NewAuthUseCase(newFakeAuthProvider(), newFakeUserRepo())
	ctx := context.Background()

	admin, token, err := uc.SetupAdmin(ctx, "admin@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.Equal(t, "custom-token-"+admin.ID, token)

	_, _, err = uc.SetupAdmin(ctx, "admin@example.com", "hunter22")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestSetupAdminRequiresConfig(t *testing.T) {
	uc := NewAuthUseCase(newFakeAuthProvider(), newFakeUserRepo())

	_, _, err := uc.SetupAdmin(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSetupAdminReusesExistingIdentityAccount(t *testing.T) {
	provider := newFakeAuthProvider()
	uc := NewAuthUseCase(provider, newFakeUserRepo())
	ctx := context.Background()

	// An earlier run created the identity account but never wrote the user
	// document. Provisioning picks the account back up instead of failing.
	existingUID, err := provider.CreateUser(ctx, "admin@example.com", "hunter22", "admin")
	require.NoError(t, err)

	admin, _, err := uc.SetupAdmin(ctx, "admin@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, existingUID, admin.ID)
	assert.Equal(t, "admin", admin.Role)
}

func TestTouchLastActive(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUseCase(newFakeAuthProvider(), userRepo)
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterInput{Email: "bob@example.com", Password: "secret123"})
	require.NoError(t, err)

	before := user.LastActive
	uc.TouchLastActive(ctx, user.ID)

	refreshed, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, refreshed.LastActive.Before(before))

	uc.TouchLastActive(ctx, "nobody")
}

func TestIsAdmin(t *testing.T) {
	uc := NewAuthUseCase(newFakeAuthProvider(), newFakeUserRepo())
	ctx := context.Background()

	admin, _, err := uc.SetupAdmin(ctx, "admin@example.com", "hunter22")
	require.NoError(t, err)

	user, err := uc.Register(ctx, RegisterInput{Email: "bob@example.com", Password: "secret123"})
	require.NoError(t, err)

	isAdmin, err := uc.IsAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = uc.IsAdmin(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = uc.IsAdmin(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
