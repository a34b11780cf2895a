package directory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/velora-boutique/velora-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "directory.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Address{}))
	return db
}

func testAddress(userID uint, name string, isDefault bool) *models.Address {
	return &models.Address{
		UserID:    userID,
		Name:      name,
		Street:    "42 Rosewood Lane",
		City:      "Jaipur",
		State:     "Rajasthan",
		ZipCode:   "302001",
		Country:   "India",
		IsDefault: isDefault,
	}
}

func defaultAddresses(t *testing.T, db *gorm.DB, userID uint) []models.Address {
	t.Helper()
	addresses, err := List(db, userID)
	require.NoError(t, err)
	var defaults []models.Address
	for _, address := range addresses {
		if address.IsDefault {
			defaults = append(defaults, address)
		}
	}
	return defaults
}

func TestCreateWithDefaultClearsPreviousDefault(t *testing.T) {
	db := newTestDB(t)

	first := testAddress(1, "Home", true)
	require.NoError(t, Create(db, first))

	second := testAddress(1, "Studio", true)
	require.NoError(t, Create(db, second))

	defaults := defaultAddresses(t, db, 1)
	require.Len(t, defaults, 1)
	assert.Equal(t, "Studio", defaults[0].Name)
}

func TestCreateWithoutDefaultLeavesDefaultAlone(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Create(db, testAddress(1, "Home", true)))
	require.NoError(t, Create(db, testAddress(1, "Studio", false)))

	defaults := defaultAddresses(t, db, 1)
	require.Len(t, defaults, 1)
	assert.Equal(t, "Home", defaults[0].Name)
}

func TestSetDefault(t *testing.T) {
	db := newTestDB(t)

	home := testAddress(1, "Home", true)
	require.NoError(t, Create(db, home))
	studio := testAddress(1, "Studio", false)
	require.NoError(t, Create(db, studio))
	office := testAddress(1, "Office", false)
	require.NoError(t, Create(db, office))

	require.NoError(t, SetDefault(db, 1, studio.ID))

	defaults := defaultAddresses(t, db, 1)
	require.Len(t, defaults, 1)
	assert.Equal(t, studio.ID, defaults[0].ID)

	// Switching again still yields exactly one default.
	require.NoError(t, SetDefault(db, 1, office.ID))
	defaults = defaultAddresses(t, db, 1)
	require.Len(t, defaults, 1)
	assert.Equal(t, office.ID, defaults[0].ID)
}

func TestSetDefaultIsScopedToOwner(t *testing.T) {
	db := newTestDB(t)

	mine := testAddress(1, "Home", true)
	require.NoError(t, Create(db, mine))
	theirs := testAddress(2, "Home", true)
	require.NoError(t, Create(db, theirs))

	err := SetDefault(db, 1, theirs.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The other owner's default is untouched.
	defaults := defaultAddresses(t, db, 2)
	require.Len(t, defaults, 1)
	assert.Equal(t, theirs.ID, defaults[0].ID)
}

func TestUpdateGrantsDefault(t *testing.T) {
	db := newTestDB(t)

	home := testAddress(1, "Home", true)
	require.NoError(t, Create(db, home))
	studio := testAddress(1, "Studio", false)
	require.NoError(t, Create(db, studio))

	updated := *testAddress(1, "Studio Loft", true)
	require.NoError(t, Update(db, 1, studio.ID, updated))

	defaults := defaultAddresses(t, db, 1)
	require.Len(t, defaults, 1)
	assert.Equal(t, studio.ID, defaults[0].ID)
	assert.Equal(t, "Studio Loft", defaults[0].Name)
}

func TestUpdateRejectsForeignAddress(t *testing.T) {
	db := newTestDB(t)

	theirs := testAddress(2, "Home", false)
	require.NoError(t, Create(db, theirs))

	err := Update(db, 1, theirs.ID, *testAddress(1, "Hijack", false))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)

	home := testAddress(1, "Home", false)
	require.NoError(t, Create(db, home))

	require.NoError(t, Delete(db, 1, home.ID))
	addresses, err := List(db, 1)
	require.NoError(t, err)
	assert.Empty(t, addresses)

	assert.ErrorIs(t, Delete(db, 1, home.ID), gorm.ErrRecordNotFound)
}

func TestDeleteIsScopedToOwner(t *testing.T) {
	db := newTestDB(t)

	theirs := testAddress(2, "Home", false)
	require.NoError(t, Create(db, theirs))

	assert.ErrorIs(t, Delete(db, 1, theirs.ID), gorm.ErrRecordNotFound)

	addresses, err := List(db, 2)
	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}

func TestListPutsDefaultFirst(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Create(db, testAddress(1, "Home", false)))
	require.NoError(t, Create(db, testAddress(1, "Studio", false)))
	office := testAddress(1, "Office", false)
	require.NoError(t, Create(db, office))
	require.NoError(t, SetDefault(db, 1, office.ID))

	addresses, err := List(db, 1)
	require.NoError(t, err)
	require.Len(t, addresses, 3)
	assert.Equal(t, office.ID, addresses[0].ID)
	assert.True(t, addresses[0].IsDefault)
}
