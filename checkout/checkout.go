// Package checkout turns the current cart into an order. Creation is
// best-effort rather than transactional: the order row is written first, the
// item rows second, and a failure in between leaves the order in place with
// the error surfaced so it can be reconciled, not silently retried or rolled
// back.
package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/velora-boutique/velora-api/cart"
	"github.com/velora-boutique/velora-api/models"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentOnline         PaymentMethod = "online"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"

	OrderStatusProcessing = "Processing"
)

var (
	ErrUnauthenticated = errors.New("checkout: no authenticated user")
	ErrNoAddress       = errors.New("checkout: no delivery address selected")
	ErrEmptyCart       = errors.New("checkout: cart is empty")
	ErrInvalidPayment  = errors.New("checkout: unknown payment method")
	ErrCreateOrder     = errors.New("checkout: failed to create order")
	ErrOrderItems      = errors.New("checkout: failed to create order items")
)

// Total sums unit price times quantity across the lines. PlaceOrder computes
// this itself at call time instead of trusting a total handed in.
func Total(lines []cart.Line) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}

// PlaceOrder creates an order and its items for the given cart lines. It does
// not clear the cart; the caller does that after its own confirmation step.
func PlaceOrder(db *gorm.DB, userID, addressID uint, lines []cart.Line, method PaymentMethod) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if addressID == 0 {
		return nil, ErrNoAddress
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if method != PaymentCashOnDelivery && method != PaymentOnline {
		return nil, ErrInvalidPayment
	}

	var address models.Address
	if err := db.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAddress
		}
		return nil, fmt.Errorf("checkout: verify address: %w", err)
	}

	paymentStatus := PaymentStatusPending
	if method == PaymentOnline {
		paymentStatus = PaymentStatusPaid
	}

	order := models.Order{
		Reference:         uuid.New().String(),
		UserID:            userID,
		AddressID:         addressID,
		TotalPrice:        Total(lines),
		PaymentMethod:     string(method),
		PaymentStatus:     paymentStatus,
		OrderStatus:       OrderStatusProcessing,
		EstimatedDelivery: time.Now().AddDate(0, 0, deliveryDays()),
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOrder, err)
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			OrderID:   int(order.ID),
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
			Color:     line.SelectedColor,
			Size:      line.SelectedSize,
			Snapshot:  productSnapshot(line.Product),
		})
	}
	if err := db.Create(&items).Error; err != nil {
		return &order, fmt.Errorf("%w (order %s): %v", ErrOrderItems, order.Reference, err)
	}

	order.OrderItems = items
	return &order, nil
}

// deliveryDays picks the estimated delivery window: 3 to 5 whole days out.
func deliveryDays() int {
	return rand.IntN(3) + 3
}

func productSnapshot(product models.Product) datatypes.JSON {
	raw, err := json.Marshal(struct {
		Image    string   `json:"image"`
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
	}{product.Image, product.Category, product.Tags})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
