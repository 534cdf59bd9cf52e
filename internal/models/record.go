package models

import (
	"time"
)

// DateLayout is the civil-date key format used for all per-day state.
// Dates are derived from the injected clock in the process-local timezone;
// there is deliberately no timezone normalization.
const DateLayout = "2006-01-02"

// DailyRecord holds one day of production data for a farmer. A later write
// for the same (farmer, date) replaces the prior values.
type DailyRecord struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	FarmerID      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_record_farmer_date" json:"farmer_id"`
	RecordDate    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_record_farmer_date" json:"record_date"`
	BirdCount     int       `gorm:"not null" json:"bird_count"`
	EggsCollected int       `gorm:"not null" json:"eggs_collected"`
	FeedKg        float64   `gorm:"not null" json:"feed_kg"`
	OtherExpenses float64   `gorm:"not null" json:"other_expenses"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (DailyRecord) TableName() string {
	return "daily_records"
}

// DashboardSnapshot is the card data for the dashboard page.
type DashboardSnapshot struct {
	BirdCount     int     `json:"bird_count"`
	EggsToday     int     `json:"eggs_today"`
	FeedToday     float64 `json:"feed_today"`
	OtherExpenses float64 `json:"other_expenses"`
	ProfitLoss    float64 `json:"profit_loss"`
}

// SeriesPoint is one day in a production time series.
type SeriesPoint struct {
	DateLabel string  `json:"date_label"` // MM/DD
	Date      string  `json:"date"`       // YYYY-MM-DD
	Eggs      int     `json:"eggs"`
	FeedKg    float64 `json:"feed_kg"`
}
