package models

import (
	"time"
)

// DeliveryStatus is the lifecycle status of an Order, stored as a string
// column.
type DeliveryStatus string

const (
	StatusNew       DeliveryStatus = "NEW"
	StatusAccepted  DeliveryStatus = "ACCEPTED"
	StatusReady     DeliveryStatus = "READY"
	StatusShipped   DeliveryStatus = "SHIPPED"
	StatusDelivered DeliveryStatus = "DELIVERED"
)

// DeliveryStatuses lists every known status, in lifecycle order.
var DeliveryStatuses = []DeliveryStatus{
	StatusNew,
	StatusAccepted,
	StatusReady,
	StatusShipped,
	StatusDelivered,
}

// IsValid reports whether s is one of the known delivery statuses.
func (s DeliveryStatus) IsValid() bool {
	for _, known := range DeliveryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PizzaSize is the size of an ordered pizza (S, M or L).
type PizzaSize string

const (
	SizeSmall  PizzaSize = "S"
	SizeMedium PizzaSize = "M"
	SizeLarge  PizzaSize = "L"
)

// IsValid reports whether s is one of the known pizza sizes.
func (s PizzaSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Order is a customer's pizza request. It starts in NEW and advances through
// the delivery statuses; once a terminal status is reached the order and its
// items become immutable.
type Order struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CustomerID uint           `json:"customer_id" gorm:"not null;index"`
	Customer   Customer       `json:"customer" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Status     DeliveryStatus `json:"status" gorm:"type:varchar(10);not null"`
	Items      []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one (pizza, size, count) line within an order. The creation
// path emits at most one row per (order, pizza, size) pair, backed by the
// composite unique index.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;uniqueIndex:ux_order_items_pizza_size"`
	PizzaID   uint      `json:"pizza_id" gorm:"not null;uniqueIndex:ux_order_items_pizza_size"`
	Pizza     Pizza     `json:"pizza" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
	Size      PizzaSize `json:"size" gorm:"type:varchar(6);not null;uniqueIndex:ux_order_items_pizza_size"`
	Count     uint      `json:"count" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
