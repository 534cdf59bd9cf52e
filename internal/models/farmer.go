package models

import (
	"time"
)

// Farmer is an account that can log in. FarmerID is stable and immutable
// after creation; all per-farmer state is keyed by it.
type Farmer struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	FarmerID  string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"farmer_id"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	FarmType  string    `gorm:"type:varchar(50);default:'chickens'" json:"farm_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Farmer) TableName() string {
	return "farmers"
}
