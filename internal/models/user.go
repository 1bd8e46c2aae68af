package models

import (
	"gorm.io/gorm"
)

// Role is a user's access level. New users default to participant; admins
// promote via the role update endpoint.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleOrganizer   Role = "organizer"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Role     Role   `json:"role" gorm:"default:participant"`
	PhotoURL string `json:"photoURL"`
}
