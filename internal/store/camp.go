// Package store holds the typed repositories over the shared gorm handle.
// Handlers stay thin; everything that touches the database lives here.
package store

import (
	"errors"
	"time"

	"github.com/medicare-camp/camp-api/internal/listing"
	"github.com/medicare-camp/camp-api/internal/models"
	"gorm.io/gorm"
)

// CampStore handles persistence for camps.
type CampStore struct {
	db *gorm.DB
}

func NewCampStore(db *gorm.DB) *CampStore {
	return &CampStore{db: db}
}

// Create inserts a new camp. The participant counter always starts at zero,
// whatever the caller submitted; only enrollment moves it.
func (s *CampStore) Create(camp *models.Camp) error {
	camp.ParticipantCount = 0
	return s.db.Create(camp).Error
}

// Get returns a single camp or gorm.ErrRecordNotFound.
func (s *CampStore) Get(id uint) (*models.Camp, error) {
	var camp models.Camp
	if err := s.db.First(&camp, id).Error; err != nil {
		return nil, err
	}
	return &camp, nil
}

// Upsert replaces the camp's fields under the given id, creating it when
// absent. The participant counter of an existing camp is preserved: a full
// replace must not undo enrollment bookkeeping.
func (s *CampStore) Upsert(id uint, in models.Camp) (*models.Camp, error) {
	var camp models.Camp
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&camp, id).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			camp = in
			camp.ID = id
			camp.ParticipantCount = 0
			return tx.Create(&camp).Error
		}
		camp.CampName = in.CampName
		camp.CampLocation = in.CampLocation
		camp.CampTime = in.CampTime
		camp.CampFee = in.CampFee
		camp.OrganizerEmail = in.OrganizerEmail
		return tx.Save(&camp).Error
	})
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// Delete removes a camp outright, freeing its id for a later upsert.
// Registrations referencing it are left in place; roster reads tolerate the
// orphaned reference.
func (s *CampStore) Delete(id uint) error {
	res := s.db.Unscoped().Delete(&models.Camp{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Popular returns the top camps by participant count.
func (s *CampStore) Popular(limit int) ([]models.Camp, error) {
	var camps []models.Camp
	err := s.db.Order("participant_count DESC").Limit(limit).Find(&camps).Error
	return camps, err
}

// Previous returns past camps, busiest first.
func (s *CampStore) Previous(now time.Time, limit int) ([]models.Camp, error) {
	var camps []models.Camp
	err := s.db.Scopes(listing.Previous(now)).
		Order("participant_count DESC").Limit(limit).Find(&camps).Error
	return camps, err
}

// List runs a filtered/sorted/paginated camp query built from listing scopes.
func (s *CampStore) List(scopes ...listing.Scope) ([]models.Camp, error) {
	var camps []models.Camp
	err := s.db.Scopes(scopes...).Find(&camps).Error
	return camps, err
}

// Count counts camps matching the given filter scopes.
func (s *CampStore) Count(scopes ...listing.Scope) (int64, error) {
	var n int64
	err := s.db.Model(&models.Camp{}).Scopes(scopes...).Count(&n).Error
	return n, err
}

// ByOrganizer returns the camps an organizer added, newest first.
func (s *CampStore) ByOrganizer(email string) ([]models.Camp, error) {
	var camps []models.Camp
	err := s.db.Where("organizer_email = ?", email).
		Scopes(listing.Newest()).Find(&camps).Error
	return camps, err
}

// CountByOrganizer counts the camps an organizer added.
func (s *CampStore) CountByOrganizer(email string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Camp{}).
		Where("organizer_email = ?", email).Count(&n).Error
	return n, err
}
