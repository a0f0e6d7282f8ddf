package model

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAgent UserRole = "agent"
	UserRoleAdmin UserRole = "admin"
)

// Identity is supplied by the gateway for every request, never derived here.
type Identity struct {
	UserID string
	Role   UserRole
}

func (i Identity) IsAgent() bool {
	return i.Role == UserRoleAgent || i.Role == UserRoleAdmin
}

// ParticipantRole is what the resolver grants a caller on a specific conversation.
type ParticipantRole string

const (
	RoleOwner ParticipantRole = "owner"
	RoleAgent ParticipantRole = "agent"
	RoleNone  ParticipantRole = "none"
)
