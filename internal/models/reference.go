package models

import (
	"strings"
)

// Disease is one row of the static disease reference table.
type Disease struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	Name       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	FarmTypes  string `gorm:"type:varchar(100);not null" json:"farm_types"` // comma-separated tags
	Symptoms   string `gorm:"type:text;not null" json:"symptoms"`
	Treatment  string `gorm:"type:text;not null" json:"treatment"`
	Prevention string `gorm:"type:text" json:"prevention"`
}

func (Disease) TableName() string {
	return "diseases"
}

// MatchesFarmType reports whether the disease applies to the given farm type.
// An empty filter matches everything.
func (d *Disease) MatchesFarmType(farmType string) bool {
	return matchesTag(d.FarmTypes, farmType)
}

// Scheme is one government support scheme.
type Scheme struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	FarmTypes   string `gorm:"type:varchar(100);not null" json:"farm_types"`
	Description string `gorm:"type:text;not null" json:"description"`
	Eligibility string `gorm:"type:text" json:"eligibility"`
	Benefit     string `gorm:"type:text" json:"benefit"`
}

func (Scheme) TableName() string {
	return "schemes"
}

func (s *Scheme) MatchesFarmType(farmType string) bool {
	return matchesTag(s.FarmTypes, farmType)
}

func matchesTag(tags, farmType string) bool {
	if farmType == "" {
		return true
	}
	for _, tag := range strings.Split(tags, ",") {
		if strings.TrimSpace(tag) == farmType {
			return true
		}
	}
	return false
}

// Farm type tags
const (
	FarmTypeChickens = "chickens"
	FarmTypePigs     = "pigs"
	FarmTypeBoth     = "both"
)

// FarmStatistics holds sector-level statistics shown on the dashboard.
type FarmStatistics struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	FarmType            string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"farm_type"`
	TotalPopulation     int64   `gorm:"not null" json:"total_population"`
	RegisteredFarms     int     `gorm:"not null" json:"registered_farms"`
	AnnualProductionMT  float64 `json:"annual_production_mt"`
	FarmersBenefitted   int     `json:"farmers_benefitted"`
	GrowthRatePercent   float64 `json:"growth_rate"`
}

func (FarmStatistics) TableName() string {
	return "farm_statistics"
}
