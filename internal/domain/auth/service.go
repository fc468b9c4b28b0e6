package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactive           = errors.New("user account is inactive")
	ErrNotAdmin           = errors.New("administrator role required")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service struct {
	Store  *Store
	Tokens *TokenService
}

func NewService(store *Store, tokens *TokenService) *Service {
	return &Service{Store: store, Tokens: tokens}
}

// Authenticate verifies the identifier/password pair and returns a token pair
// for the admin session. Only administrators may obtain a session here.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*User, TokenPair, error) {
	user, hash, err := s.Store.CredentialByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if err := CheckPassword(hash, password); err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, TokenPair{}, ErrInactive
	}
	if user.Role != RoleAdmin {
		return nil, TokenPair{}, ErrNotAdmin
	}

	pair, err := s.Tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh validates a refresh token against the refresh key and rotates the
// pair. The subject must still resolve to an active user.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*User, TokenPair, error) {
	claims, err := s.Tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidToken
	}
	userID, err := claims.SubjectID()
	if err != nil {
		return nil, TokenPair{}, ErrInvalidToken
	}

	user, err := s.Store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, TokenPair{}, ErrInvalidToken
		}
		return nil, TokenPair{}, err
	}
	if !user.IsActive {
		return nil, TokenPair{}, ErrInvalidToken
	}

	pair, err := s.Tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

// CurrentUser resolves a verified access token's subject.
func (s *Service) CurrentUser(ctx context.Context, claims *Claims) (*User, error) {
	userID, err := claims.SubjectID()
	if err != nil {
		return nil, ErrInvalidToken
	}
	return s.Store.UserByID(ctx, userID)
}
