package api

import (
	"context"
	"fmt"
	"io"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
)

// AuthClient covers the /Users authentication endpoints.
type AuthClient struct {
	gw *gateway.Client
}

// NewAuthClient constructs an AuthClient.
func NewAuthClient(gw *gateway.Client) *AuthClient {
	return &AuthClient{gw: gw}
}

// LoginRequest is the credential payload for POST /Users/Login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the login response: a bearer token and its lifetime.
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

// Login exchanges credentials for a bearer token.
func (c *AuthClient) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var out LoginResult
	if err := c.gw.Post(ctx, "/Users/Login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterRequest carries the registration form. ProfileImage is
// optional.
type RegisterRequest struct {
	UserName        string
	Email           string
	Country         string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
	ProfileImage    io.Reader
	ImageFileName   string
}

// Register submits the registration form as multipart. The account
// must be verified by email code before login.
func (c *AuthClient) Register(ctx context.Context, req RegisterRequest) (*MessageResult, error) {
	form := gateway.NewForm().
		AddField("userName", req.UserName).
		AddField("email", req.Email).
		AddField("country", req.Country).
		AddField("phoneNumber", req.PhoneNumber).
		AddField("password", req.Password).
		AddField("confirmPassword", req.ConfirmPassword)
	if req.ProfileImage != nil {
		form.AddFile("profileImage", req.ImageFileName, req.ProfileImage)
	}

	var out MessageResult
	if err := c.gw.PostForm(ctx, "/Users/Register", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyRequest carries the emailed verification code.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Verify activates a freshly registered account.
func (c *AuthClient) Verify(ctx context.Context, req VerifyRequest) (*MessageResult, error) {
	var out MessageResult
	if err := c.gw.Put(ctx, "/Users/verify", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset triggers the reset email for the given address.
func (c *AuthClient) RequestPasswordReset(ctx context.Context, email string) (*MessageResult, error) {
	var out MessageResult
	body := map[string]string{"email": email}
	if err := c.gw.Post(ctx, "/Users/Reset/Request", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPasswordRequest carries the emailed seed and the new password.
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Seed            string `json:"seed"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ResetPassword completes a password reset.
func (c *AuthClient) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResult, error) {
	var out MessageResult
	if err := c.gw.Post(ctx, "/Users/Reset", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the authenticated user's identity record. opts
// may carry gateway.WithToken during login completion.
func (c *AuthClient) CurrentUser(ctx context.Context, opts ...gateway.CallOption) (*User, error) {
	var out User
	if err := c.gw.Get(ctx, "/Users/currentUser", &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePasswordRequest carries the password-change form.
type ChangePasswordRequest struct {
	OldPassword        string `json:"oldPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// ChangePassword replaces the authenticated user's password.
func (c *AuthClient) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*MessageResult, error) {
	var out MessageResult
	if err := c.gw.Put(ctx, "/Users/ChangePassword", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfileRequest carries the profile-update form. Zero-value
// fields are omitted; ProfileImage is optional.
type UpdateProfileRequest struct {
	UserName        string
	Email           string
	Country         string
	PhoneNumber     string
	ConfirmPassword string
	ProfileImage    io.Reader
	ImageFileName   string
}

// UpdateProfile submits the profile update as multipart and returns
// the refreshed user record.
func (c *AuthClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	form := gateway.NewForm()
	addIfSet := func(name, value string) {
		if value != "" {
			form.AddField(name, value)
		}
	}
	addIfSet("userName", req.UserName)
	addIfSet("email", req.Email)
	addIfSet("country", req.Country)
	addIfSet("phoneNumber", req.PhoneNumber)
	addIfSet("confirmPassword", req.ConfirmPassword)
	if req.ProfileImage != nil {
		form.AddFile("profileImage", req.ImageFileName, req.ProfileImage)
	}

	var out User
	if err := c.gw.PutForm(ctx, "/Users/", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserByID fetches a user record by identifier.
func (c *AuthClient) UserByID(ctx context.Context, id int) (*User, error) {
	var out User
	if err := c.gw.Get(ctx, fmt.Sprintf("/Users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
