package models

import (
	"time"
)

// TaskItem is one checklist entry on a farmer's daily task board. Boards are
// seeded once per date from the daily catalog; Position preserves catalog
// order.
type TaskItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	FarmerID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_task_farmer_date_task" json:"farmer_id"`
	BoardDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_task_farmer_date_task" json:"board_date"`
	TaskID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_task_farmer_date_task" json:"task_id"`
	Label     string    `gorm:"type:varchar(255);not null" json:"label"`
	Points    int       `gorm:"not null" json:"points"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (TaskItem) TableName() string {
	return "task_items"
}

// TaskCompletion records that a task was completed on a date. Completion is
// one-way; there is no uncomplete operation.
type TaskCompletion struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	FarmerID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_done_farmer_date_task" json:"farmer_id"`
	BoardDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_done_farmer_date_task" json:"board_date"`
	TaskID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_done_farmer_date_task" json:"task_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

func (TaskCompletion) TableName() string {
	return "task_completions"
}

// TaskView is a board entry combined with its completion state.
type TaskView struct {
	TaskID    string `json:"task_id"`
	Label     string `json:"label"`
	Points    int    `json:"points"`
	Completed bool   `json:"completed"`
}
