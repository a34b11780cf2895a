package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Reference         string      `json:"reference" gorm:"size:36;uniqueIndex"`
	UserID            uint        `json:"userId"`
	AddressID         uint        `json:"addressId"`
	Address           *Address    `json:"address,omitempty"`
	TotalPrice        float64     `json:"totalPrice"`
	PaymentMethod     string      `json:"paymentMethod"`
	PaymentStatus     string      `json:"paymentStatus"`
	OrderStatus       string      `json:"orderStatus"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	OrderItems        []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem captures a cart line at purchase time. Name, price, color and size
// are snapshots, not live references into the catalog; Snapshot keeps the rest
// of the product record (image, category, tags) as it looked when ordered.
type OrderItem struct {
	gorm.Model
	OrderID   int            `json:"orderId"`
	ProductID int            `json:"productId"`
	Name      string         `json:"name"`
	Price     float64        `json:"price"`
	Quantity  int            `json:"quantity"`
	Color     string         `json:"color,omitempty"`
	Size      string         `json:"size,omitempty"`
	Snapshot  datatypes.JSON `json:"snapshot,omitempty"`
}
