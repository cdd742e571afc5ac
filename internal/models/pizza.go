package models

import (
	"time"
)

// Pizza is a menu entry. The ordering flow only reads pizzas; they are
// managed separately (seeding, admin tooling).
type Pizza struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
