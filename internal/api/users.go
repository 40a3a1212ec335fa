package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
)

// UsersClient covers the admin-facing /Users management endpoints.
type UsersClient struct {
	gw *gateway.Client
}

// NewUsersClient constructs a UsersClient.
func NewUsersClient(gw *gateway.Client) *UsersClient {
	return &UsersClient{gw: gw}
}

// UserListParams filters GET /Users/. Groups takes group identifiers
// (1 = SuperAdmin, 2 = SystemUser) and is sent as repeated keys.
type UserListParams struct {
	PageSize   int
	PageNumber int
	UserName   string
	Email      string
	Country    string
	Groups     []int
}

// Values encodes the parameters for the query string.
func (p UserListParams) Values() url.Values {
	v := pageValues(p.PageSize, p.PageNumber)
	if p.UserName != "" {
		v.Set("userName", p.UserName)
	}
	if p.Email != "" {
		v.Set("email", p.Email)
	}
	if p.Country != "" {
		v.Set("country", p.Country)
	}
	for _, g := range p.Groups {
		v.Add("groups", strconv.Itoa(g))
	}
	return v
}

// List fetches a filtered page of users.
func (c *UsersClient) List(ctx context.Context, params UserListParams) (*Paginated[User], error) {
	var out Paginated[User]
	if err := c.gw.Get(ctx, "/Users/", &out, gateway.WithQuery(params.Values())); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single user by identifier.
func (c *UsersClient) Get(ctx context.Context, id int) (*User, error) {
	var out User
	if err := c.gw.Get(ctx, fmt.Sprintf("/Users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a user. Admin only.
func (c *UsersClient) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.gw.Delete(ctx, fmt.Sprintf("/Users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
