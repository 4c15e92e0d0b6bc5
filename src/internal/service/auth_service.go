package service

import (
	"crypto/subtle"

	"github.com/shourov-bot/bot-panel/src/internal/auth"
	"github.com/shourov-bot/bot-panel/src/internal/errors"
	"github.com/shourov-bot/bot-panel/src/internal/log"
	"github.com/shourov-bot/bot-panel/src/internal/models"
	"github.com/shourov-bot/bot-panel/src/internal/store"
)

// InvalidCredentialsMessage is returned for every failed login.
const InvalidCredentialsMessage = "Invalid credentials"

// AuthService checks credentials and issues session tokens.
type AuthService struct {
	store  *store.Store
	tokens *auth.Issuer
}

// NewAuthService creates an auth service.
func NewAuthService(st *store.Store, tokens *auth.Issuer) *AuthService {
	return &AuthService{store: st, tokens: tokens}
}

// Login returns a signed token and the user for valid credentials.
// Unknown users and wrong passwords produce the same unauthorized error.
func (a *AuthService) Login(username, password string) (string, models.User, error) {
	user, found := a.store.UserByUsername(username)

	expected := user.Password
	if !found {
		expected = password + "\x00"
	}
	match := subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1

	if !found || !match {
		log.Debugf("Rejected login for %q", username)
		return "", models.User{}, errors.NewUnauthorizedError(InvalidCredentialsMessage)
	}

	token, err := a.tokens.Issue(user.Username, user.IsAdmin)
	if err != nil {
		return "", models.User{}, errors.NewInternalError("Failed to issue token", err)
	}
	return token, user, nil
}

// Verify returns the claims of a valid session token.
func (a *AuthService) Verify(token string) (*auth.Claims, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid or expired token")
	}
	return claims, nil
}
