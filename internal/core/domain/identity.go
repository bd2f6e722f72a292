package domain

import "errors"

// Role determines what an authenticated identity may do.
type Role string

const (
	RoleManager     Role = "manager"
	RoleStorekeeper Role = "storekeeper"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrLoginInProgress = errors.New("login already in progress")

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleStorekeeper
}

// Identity is an authenticated user's public profile. It never carries
// credential material.
type Identity struct {
	ID    string `json:"id" bson:"id"`
	Email string `json:"email" bson:"email"`
	Name  string `json:"name" bson:"name"`
	Role  Role   `json:"role" bson:"role"`
}

// Credential binds a login email and password hash to the identity it
// unlocks. It stays inside the authentication layer.
type Credential struct {
	Email        string
	PasswordHash string
	Identity     Identity
}

// Session is the authenticated identity of the running client, if any.
type Session struct {
	Identity *Identity
}

// NewSession wraps id in a Session. A nil id yields an absent session.
func NewSession(id *Identity) Session {
	if id == nil {
		return Session{}
	}
	clone := *id
	return Session{Identity: &clone}
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool {
	return s.Identity != nil
}

// Role returns the session's role, or "" when absent.
func (s Session) Role() Role {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Role
}
