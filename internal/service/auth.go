package service

// Package service contains the feature data services, one per
// resource. Services orchestrate the API clients, the query cache, the
// session store and the navigator; success notifications live here,
// failure notifications belong to the gateway alone.

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/query"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/routeguard"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/session"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Client    *api.AuthClient
	Sessions  *session.Store
	Cache     *query.Cache
	Notifier  ports.Notifier
	Navigator ports.Navigator
}

// AuthService orchestrates the authentication flows: login, register,
// verification, password management and profile updates.
type AuthService struct {
	client    *api.AuthClient
	sessions  *session.Store
	cache     *query.Cache
	notifier  ports.Notifier
	navigator ports.Navigator
}

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Client == nil {
		return nil, errors.New("auth client is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("query cache is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if opts.Navigator == nil {
		return nil, errors.New("navigator is required")
	}
	return &AuthService{
		client:    opts.Client,
		sessions:  opts.Sessions,
		cache:     opts.Cache,
		notifier:  opts.Notifier,
		navigator: opts.Navigator,
	}, nil
}

// Login exchanges credentials for a token, fetches the identity record
// with that token, commits both to the session store atomically, and
// lands on the dashboard.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.User, error) {
	res, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	// The token is not committed yet; the identity fetch carries it
	// explicitly.
	user, err := s.client.CurrentUser(ctx, gateway.WithToken(res.Token))
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetAuth(ctx, *user, res.Token); err != nil {
		return nil, fmt.Errorf("commit session: %w", err)
	}

	s.notifier.Success("Login successful!")
	s.navigator.Navigate(routeguard.PathDashboard)
	return user, nil
}

// Register submits the registration form and moves on to account
// verification.
func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) error {
	if _, err := s.client.Register(ctx, req); err != nil {
		return err
	}
	s.notifier.Success("Registration successful! Please verify your email.")
	s.navigator.Navigate(routeguard.PathVerifyAccount)
	return nil
}

// VerifyAccount activates a registered account with the emailed code.
func (s *AuthService) VerifyAccount(ctx context.Context, email, code string) error {
	if _, err := s.client.Verify(ctx, api.VerifyRequest{Email: email, Code: code}); err != nil {
		return err
	}
	s.notifier.Success("Account verified successfully! Please login.")
	s.navigator.Navigate(routeguard.PathLogin)
	return nil
}

// ForgotPassword requests a reset email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.client.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	s.notifier.Success("Password reset link sent to your email.")
	s.navigator.Navigate(routeguard.PathResetPassword)
	return nil
}

// ResetPassword completes a reset with the emailed seed.
func (s *AuthService) ResetPassword(ctx context.Context, req api.ResetPasswordRequest) error {
	if _, err := s.client.ResetPassword(ctx, req); err != nil {
		return err
	}
	s.notifier.Success("Password reset successfully! Please login.")
	s.navigator.Navigate(routeguard.PathLogin)
	return nil
}

// ChangePassword replaces the authenticated user's password.
func (s *AuthService) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error {
	if _, err := s.client.ChangePassword(ctx, req); err != nil {
		return err
	}
	s.notifier.Success("Password changed successfully!")
	return nil
}

// UpdateProfile submits the profile form and replaces the session's
// user record, leaving the token untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*domainauth.User, error) {
	user, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("update session user: %w", err)
	}
	s.cache.Invalidate(ctx, query.RegionAuth)
	s.notifier.Success("Profile updated successfully!")
	return user, nil
}

// CurrentUser fetches the authenticated identity record through the
// cache.
func (s *AuthService) CurrentUser(ctx context.Context) (*domainauth.User, error) {
	key := query.SingletonKey(query.RegionAuth, "currentUser")
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*domainauth.User, error) {
		return s.client.CurrentUser(ctx)
	})
}

// Logout clears the session and returns to the login screen.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Logout(ctx); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, query.RegionAuth)
	s.navigator.Navigate(routeguard.PathLogin)
	return nil
}
