package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.

// Role represents the application's authorization role.
// Kept in string form for easy persistence.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Group names as delivered by the API. Any group other than SuperAdmin
// maps to the standard user role.
const (
	GroupSuperAdmin = "SuperAdmin"
	GroupSystemUser = "SystemUser"
)

// UserGroup is the privilege group attached to a user record.
type UserGroup struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
}

// User is the identity record returned by the API.
type User struct {
	ID               int       `json:"id"`
	UserName         string    `json:"userName"`
	Email            string    `json:"email"`
	Country          string    `json:"country"`
	PhoneNumber      string    `json:"phoneNumber"`
	ImagePath        string    `json:"imagePath,omitempty"`
	Group            UserGroup `json:"group"`
	CreationDate     string    `json:"creationDate,omitempty"`
	ModificationDate string    `json:"modificationDate,omitempty"`
}

// Session is the authentication state held by the session store.
// The invariant maintained by the store: IsAuthenticated is true iff
// both User and Token are set, and Role is always derived from
// User.Group.Name, never assigned independently.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Role            Role   `json:"role"`
}

// IsAdmin reports whether the session carries the administrative role.
func (s Session) IsAdmin() bool { return s.IsAuthenticated && s.Role == RoleAdmin }

// IsUser reports whether the session carries the standard-user role.
func (s Session) IsUser() bool { return s.IsAuthenticated && s.Role == RoleUser }
