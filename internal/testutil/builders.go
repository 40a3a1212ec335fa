package testutil

import (
	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
)

// UserBuilder provides a fluent interface for building User records for testing.
type UserBuilder struct {
	user domainauth.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: domainauth.User{
			ID:          42,
			UserName:    "test-user",
			Email:       "test.user@example.com",
			Country:     "Egypt",
			PhoneNumber: "01000000000",
			Group: domainauth.UserGroup{
				ID:   2,
				Name: domainauth.GroupSystemUser,
			},
		},
	}
}

// WithID sets the user ID.
func (b *UserBuilder) WithID(id int) *UserBuilder {
	b.user.ID = id
	return b
}

// WithUserName sets the user name.
func (b *UserBuilder) WithUserName(name string) *UserBuilder {
	b.user.UserName = name
	return b
}

// WithEmail sets the email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithGroup sets the privilege group by name.
func (b *UserBuilder) WithGroup(name string) *UserBuilder {
	b.user.Group.Name = name
	return b
}

// AsAdmin puts the user in the SuperAdmin group.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Group = domainauth.UserGroup{ID: 1, Name: domainauth.GroupSuperAdmin}
	return b
}

// Build returns the constructed User.
func (b *UserBuilder) Build() domainauth.User {
	return b.user
}

// AdminSession returns an authenticated admin session for test setups.
func AdminSession() domainauth.Session {
	user := NewUser().AsAdmin().Build()
	return domainauth.Session{
		User:            &user,
		Token:           "admin-token",
		IsAuthenticated: true,
		Role:            domainauth.RoleAdmin,
	}
}

// UserSession returns an authenticated standard-user session.
func UserSession() domainauth.Session {
	user := NewUser().Build()
	return domainauth.Session{
		User:            &user,
		Token:           "user-token",
		IsAuthenticated: true,
		Role:            domainauth.RoleUser,
	}
}

// AnonymousSession returns an unauthenticated session.
func AnonymousSession() domainauth.Session {
	return domainauth.Session{}
}
