package checkout

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/velora-boutique/velora-api/cart"
	"github.com/velora-boutique/velora-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "checkout.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Address{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) uint {
	t.Helper()
	address := models.Address{
		UserID:    userID,
		Name:      "Home",
		Street:    "42 Rosewood Lane",
		City:      "Jaipur",
		State:     "Rajasthan",
		ZipCode:   "302001",
		Country:   "India",
		IsDefault: true,
	}
	require.NoError(t, db.Create(&address).Error)
	return address.ID
}

func testLines() []cart.Line {
	return []cart.Line{
		{
			Product:       models.Product{ID: 1, Name: "Embroidered Maxi Dress", Price: 20, Category: "dresses"},
			Quantity:      2,
			SelectedColor: "Ivory",
			SelectedSize:  "M",
		},
		{
			Product:  models.Product{ID: 4, Name: "Hand-Painted Ceramic Vase", Price: 50, Category: "decor"},
			Quantity: 1,
		},
	}
}

func TestPlaceOrderCashOnDelivery(t *testing.T) {
	db := newTestDB(t)
	addressID := seedAddress(t, db, 1)

	order, err := PlaceOrder(db, 1, addressID, testLines(), PaymentCashOnDelivery)
	require.NoError(t, err)

	assert.NotEmpty(t, order.Reference)
	assert.Equal(t, uint(1), order.UserID)
	assert.Equal(t, addressID, order.AddressID)
	assert.InDelta(t, 90.0, order.TotalPrice, 0.001)
	assert.Equal(t, string(PaymentCashOnDelivery), order.PaymentMethod)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, OrderStatusProcessing, order.OrderStatus)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)
}

func TestPlaceOrderOnlineIsPaid(t *testing.T) {
	db := newTestDB(t)
	addressID := seedAddress(t, db, 1)

	order, err := PlaceOrder(db, 1, addressID, testLines(), PaymentOnline)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, order.PaymentStatus)
}

func TestPlaceOrderTotalComputedFromLines(t *testing.T) {
	db := newTestDB(t)
	addressID := seedAddress(t, db, 1)

	lines := []cart.Line{
		{Product: models.Product{ID: 2, Name: "Cocktail Dress", Price: 159.99}, Quantity: 3},
	}
	order, err := PlaceOrder(db, 1, addressID, lines, PaymentCashOnDelivery)
	require.NoError(t, err)
	assert.InDelta(t, 479.97, order.TotalPrice, 0.001)
}

func TestPlaceOrderEstimatedDeliveryWindow(t *testing.T) {
	db := newTestDB(t)
	addressID := seedAddress(t, db, 1)

	for range 10 {
		before := time.Now()
		order, err := PlaceOrder(db, 1, addressID, testLines(), PaymentCashOnDelivery)
		require.NoError(t, err)

		earliest := before.AddDate(0, 0, 3).Add(-time.Minute)
		latest := time.Now().AddDate(0, 0, 5).Add(time.Minute)
		assert.True(t, order.EstimatedDelivery.After(earliest),
			"estimated delivery %v before %v", order.EstimatedDelivery, earliest)
		assert.True(t, order.EstimatedDelivery.Before(latest),
			"estimated delivery %v after %v", order.EstimatedDelivery, latest)
	}
}

func TestPlaceOrderItemsSnapshotTheLine(t *testing.T) {
	db := newTestDB(t)
	addressID := seedAddress(t, db, 1)

	order, err := PlaceOrder(db, 1, addressID, testLines(), PaymentCashOnDelivery)
	require.NoError(t, err)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ? AND product_id = ?", order.ID, 1).First(&item).Error)
	assert.Equal(t, "Embroidered Maxi Dress", item.Name)
	assert.InDelta(t, 20.0, item.Price, 0.001)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Ivory", item.Color)
	assert.Equal(t, "M", item.Size)
	assert.Contains(t, string(item.Snapshot), `"category":"dresses"`)
}

func TestPlaceOrderPreconditions(t *testing.T) {
	db := newTestDB(t)
	addressID := seedAddress(t, db, 1)

	_, err := PlaceOrder(db, 0, addressID, testLines(), PaymentCashOnDelivery)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = PlaceOrder(db, 1, 0, testLines(), PaymentCashOnDelivery)
	assert.ErrorIs(t, err, ErrNoAddress)

	_, err = PlaceOrder(db, 1, addressID, nil, PaymentCashOnDelivery)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = PlaceOrder(db, 1, addressID, testLines(), PaymentMethod("wire"))
	assert.ErrorIs(t, err, ErrInvalidPayment)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no order should be written when a precondition fails")
}

func TestPlaceOrderRejectsForeignAddress(t *testing.T) {
	db := newTestDB(t)
	theirAddress := seedAddress(t, db, 2)

	_, err := PlaceOrder(db, 1, theirAddress, testLines(), PaymentCashOnDelivery)
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestPlaceOrderKeepsOrderWhenItemsFail(t *testing.T) {
	db := newTestDB(t)
	addressID := seedAddress(t, db, 1)

	// Force the item insert to fail after the order insert succeeded.
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	order, err := PlaceOrder(db, 1, addressID, testLines(), PaymentCashOnDelivery)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrderItems)
	require.NotNil(t, order)
	assert.Contains(t, err.Error(), order.Reference)

	// The itemless order stays; nothing compensates it away.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTotal(t *testing.T) {
	assert.Zero(t, Total(nil))
	assert.InDelta(t, 90.0, Total(testLines()), 0.001)
}
