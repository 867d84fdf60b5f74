package auth

import "fmt"

// Role is the closed set of account roles. Every authenticated caller is
// exactly one of these; service code switches on the value rather than
// comparing raw strings.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaretaker Role = "caretaker"
)

// ParseRole maps a raw role string to a Role. Anything outside the closed
// set is an error; callers decide whether that is a 400 (signup input) or a
// 403 (credential claim).
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient:
		return RolePatient, nil
	case RoleCaretaker:
		return RoleCaretaker, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }
