package store

import (
	"github.com/medicare-camp/camp-api/internal/models"
	"gorm.io/gorm"
)

// RegistrationStore handles persistence for registrations, including the
// enrollment write path and the denormalized roster reads.
type RegistrationStore struct {
	db *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

// JoinCamp records an enrollment: it inserts the registration and increments
// the camp's participant counter in one transaction, so a registration and
// its counter bump are all-or-nothing. A missing camp rolls everything back
// with gorm.ErrRecordNotFound. The increment is a relative UPDATE, not a
// read-modify-write, so concurrent joins never lose counts.
func (s *RegistrationStore) JoinCamp(campID uint, reg models.Registration) (*models.Registration, error) {
	var camp models.Camp
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&camp, campID).Error; err != nil {
			return err
		}

		reg.CampID = campID
		if reg.ConfirmationStatus == "" {
			reg.ConfirmationStatus = models.StatusPending
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Camp{}).Where("id = ?", campID).
			UpdateColumn("participant_count", gorm.Expr("participant_count + ?", 1)).Error; err != nil {
			return err
		}

		return tx.First(&camp, campID).Error
	})
	if err != nil {
		return nil, err
	}

	reg.Camp = &camp
	return &reg, nil
}

// SetStatus updates a registration's confirmation status. Re-applying the
// same status is a no-op that still reports success.
func (s *RegistrationStore) SetStatus(id uint, status models.ConfirmationStatus) error {
	res := s.db.Model(&models.Registration{}).
		Where("id = ?", id).Update("confirmation_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ByParticipant returns a participant's registrations with their camps
// embedded. A registration whose camp has been deleted is still returned,
// with no camp attached.
func (s *RegistrationStore) ByParticipant(email string) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.db.Where("participant_email = ?", email).
		Order("id DESC").Preload("Camp").Find(&regs).Error
	return regs, err
}

// CountByParticipant counts a participant's registrations.
func (s *RegistrationStore) CountByParticipant(email string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Registration{}).
		Where("participant_email = ?", email).Count(&n).Error
	return n, err
}

// ByCampOrganizer returns the registrations for camps the organizer added,
// newest first, with the camps embedded. Registrations against deleted or
// foreign camps never match the join.
func (s *RegistrationStore) ByCampOrganizer(email string) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.db.
		Joins("JOIN camps ON camps.id = registrations.camp_id").
		Where("camps.organizer_email = ?", email).
		Order("registrations.id DESC").
		Preload("Camp").
		Find(&regs).Error
	return regs, err
}

// CountByCampOrganizer counts the registrations for camps the organizer added.
func (s *RegistrationStore) CountByCampOrganizer(email string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Registration{}).
		Joins("JOIN camps ON camps.id = registrations.camp_id").
		Where("camps.organizer_email = ?", email).
		Count(&n).Error
	return n, err
}
