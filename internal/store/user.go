package store

import (
	"github.com/medicare-camp/camp-api/internal/listing"
	"github.com/medicare-camp/camp-api/internal/models"
	"gorm.io/gorm"
)

// UserStore handles persistence for users. Email is the natural key: the
// unique index guarantees at most one user per address.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// UpsertByEmail creates the user or fully replaces the profile fields of the
// existing record with the same email.
func (s *UserStore) UpsertByEmail(in models.User) (*models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrInit(&user, models.User{Email: in.Email}).Error; err != nil {
			return err
		}
		user.Name = in.Name
		user.PhotoURL = in.PhotoURL
		if in.Role != "" {
			user.Role = in.Role
		} else if user.Role == "" {
			user.Role = models.RoleParticipant
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRole sets the role of the user with the given email.
func (s *UserStore) UpdateRole(email string, role models.Role) error {
	res := s.db.Model(&models.User{}).Where("email = ?", email).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List runs a filtered/paginated user query, newest first.
func (s *UserStore) List(scopes ...listing.Scope) ([]models.User, error) {
	var users []models.User
	err := s.db.Scopes(scopes...).Find(&users).Error
	return users, err
}

// Count counts users matching the given filter scopes.
func (s *UserStore) Count(scopes ...listing.Scope) (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Scopes(scopes...).Count(&n).Error
	return n, err
}

// Delete removes a user by internal id. The row is removed outright, not
// tombstoned, so the email immediately becomes free for a later upsert.
func (s *UserStore) Delete(id uint) error {
	res := s.db.Unscoped().Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
