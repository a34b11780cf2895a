// Package directory manages a user's shipping addresses. Its one invariant:
// at most one address per user carries is_default. Every write that grants the
// flag clears it across the user's addresses first and sets the target second,
// never the other way around; a failure between the two steps leaves no
// default rather than two.
package directory

import (
	"gorm.io/gorm"

	"github.com/velora-boutique/velora-api/models"
)

// List returns the user's addresses, default first.
func List(db *gorm.DB, userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := db.
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addresses).Error
	return addresses, err
}

func clearDefault(db *gorm.DB, userID uint) error {
	return db.Model(&models.Address{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

// Create inserts an address for address.UserID. When the payload claims the
// default flag, the user's other addresses are cleared before the insert.
func Create(db *gorm.DB, address *models.Address) error {
	if address.IsDefault {
		if err := clearDefault(db, address.UserID); err != nil {
			return err
		}
	}
	return db.Create(address).Error
}

// Update rewrites an address owned by userID. Returns gorm.ErrRecordNotFound
// when the address does not exist or belongs to someone else.
func Update(db *gorm.DB, userID, addressID uint, updated models.Address) error {
	var existing models.Address
	if err := db.Where("id = ? AND user_id = ?", addressID, userID).First(&existing).Error; err != nil {
		return err
	}

	if updated.IsDefault {
		if err := clearDefault(db, userID); err != nil {
			return err
		}
	}

	return db.Model(&existing).
		Select("name", "street", "city", "state", "zip_code", "country", "is_default").
		Updates(updated).Error
}

// Delete removes an address owned by userID. Existing orders keep referencing
// the deleted address id; there is no cascade.
func Delete(db *gorm.DB, userID, addressID uint) error {
	result := db.Where("user_id = ?", userID).Delete(&models.Address{}, addressID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetDefault makes addressID the user's single default address. The clear and
// the set are two sequential writes; the set is not attempted when the clear
// fails.
func SetDefault(db *gorm.DB, userID, addressID uint) error {
	if err := clearDefault(db, userID); err != nil {
		return err
	}

	result := db.Model(&models.Address{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Update("is_default", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
