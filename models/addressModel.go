package models

import "gorm.io/gorm"

// Address is a shipping address owned by a user. At most one address per user
// has IsDefault set; the directory package enforces that on every write.
type Address struct {
	gorm.Model
	UserID    uint   `json:"userId"`
	Name      string `json:"name" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zipCode" binding:"required"`
	Country   string `json:"country" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}
