package entity

import "github.com/google/uuid"

// Principal is the authenticated actor performing an operation. Each role
// gets its own variant so authorization code branches on a concrete type
// instead of inspecting an untyped role field.
type Principal interface {
	PrincipalID() uuid.UUID
	RoleName() string
}

// DoctorPrincipal is an authenticated care provider
type DoctorPrincipal struct {
	UserID uuid.UUID
	Email  string
}

func (p DoctorPrincipal) PrincipalID() uuid.UUID { return p.UserID }
func (p DoctorPrincipal) RoleName() string       { return RoleDoctor }

// ParentPrincipal is an authenticated caregiver
type ParentPrincipal struct {
	UserID uuid.UUID
	Email  string
}

func (p ParentPrincipal) PrincipalID() uuid.UUID { return p.UserID }
func (p ParentPrincipal) RoleName() string       { return RoleParent }

// AdminPrincipal is an authenticated platform administrator
type AdminPrincipal struct {
	UserID uuid.UUID
	Email  string
}

func (p AdminPrincipal) PrincipalID() uuid.UUID { return p.UserID }
func (p AdminPrincipal) RoleName() string       { return RoleAdmin }

// PrincipalFromRoleID builds the variant matching a role ID. Returns nil
// for unknown roles.
func PrincipalFromRoleID(roleID int, userID uuid.UUID, email string) Principal {
	switch roleID {
	case RoleIDDoctor:
		return DoctorPrincipal{UserID: userID, Email: email}
	case RoleIDParent:
		return ParentPrincipal{UserID: userID, Email: email}
	case RoleIDAdmin:
		return AdminPrincipal{UserID: userID, Email: email}
	}
	return nil
}
