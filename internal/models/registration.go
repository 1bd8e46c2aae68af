package models

import (
	"gorm.io/gorm"
)

// ConfirmationStatus tracks an organizer's decision on a registration.
type ConfirmationStatus string

const (
	StatusPending   ConfirmationStatus = "pending"
	StatusConfirmed ConfirmationStatus = "confirmed"
	StatusCanceled  ConfirmationStatus = "canceled"
)

// Valid reports whether s is one of the recognized statuses.
func (s ConfirmationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	}
	return false
}

// RegistrationFields holds the form data a participant submits when joining
// a camp.
type RegistrationFields struct {
	ParticipantName  string `json:"participantName"`
	Age              int    `json:"age"`
	PhoneNumber      string `json:"phoneNumber"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergencyContact"`
}

// Registration is a participant's join record for a camp. CampID is a weak
// reference: deleting a camp leaves its registrations in place, and roster
// reads tolerate the missing camp (campDetails stays absent).
type Registration struct {
	gorm.Model
	ParticipantEmail   string             `json:"participantEmail"`
	CampID             uint               `json:"-"`
	Camp               *Camp              `json:"campDetails,omitempty" gorm:"foreignKey:CampID"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus" gorm:"default:pending"`
	RegistrationFields `gorm:"embedded"`
}
