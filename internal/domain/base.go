package domain

import "time"

// BaseModel contains common fields for all domain entities.
// IDs are auto-increment integers; the comment tree relies on ids
// increasing monotonically with insertion order.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
