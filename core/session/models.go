package session

import (
	"github.com/pkg/errors"

	"github.com/coachly/mobile/core"
)

// Role is the authorization class of a user, governing which app
// surfaces are visible.
type Role string

// Roles
const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role value at the session-creation boundary.
// Anything outside the closed set is rejected rather than mapped to a
// default.
func ParseRole(s string) (Role, error) {
	switch role := Role(core.CleanString(s, true /* lower */)); role {
	case RoleStudent, RoleTutor:
		return role, nil
	default:
		return "", errors.Wrapf(ErrUnknownRole, "role %q", s)
	}
}

// User is the authenticated identity, as returned by the backend on
// login/registration (token excluded) and as persisted on the device.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone_no"`
	Role  Role   `json:"role"`
}

// Session is the current identity and credential held by the running app.
// Token and User are always set and cleared together.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether both the token and the user are present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// IsStudent reports whether the session belongs to a student. A session
// with no user belongs to no role.
func IsStudent(s Session) bool {
	return s.User != nil && s.User.Role == RoleStudent
}
