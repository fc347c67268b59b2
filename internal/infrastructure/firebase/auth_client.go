package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase Auth SDK behind the handful of operations
// the app needs: account creation, ID token verification and custom token
// minting.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (a *AuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (a *AuthClient) GetUserByEmail(ctx context.Context, email string) (string, error) {
	user, err := a.client.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

// VerifyToken validates a Firebase ID token and returns the subject uid.
func (a *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (a *AuthClient) GenerateToken(ctx context.Context, uid string) (string, error) {
	return a.client.CustomToken(ctx, uid)
}
