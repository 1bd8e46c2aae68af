package models

import (
	"time"

	"gorm.io/gorm"
)

// Camp is a scheduled medical event. ParticipantCount mirrors the number of
// registrations referencing the camp and is only ever adjusted inside the
// enrollment transaction (see store.RegistrationStore.JoinCamp).
type Camp struct {
	gorm.Model
	CampName         string    `json:"campName"`
	CampLocation     string    `json:"campLocation"`
	CampTime         time.Time `json:"campTime"`
	CampFee          float64   `json:"campFee"`
	OrganizerEmail   string    `json:"organizerEmail"`
	ParticipantCount int       `json:"participantCount"`
}

// Upcoming reports whether the camp is scheduled at or after now.
func (c *Camp) Upcoming(now time.Time) bool {
	return !c.CampTime.Before(now)
}
