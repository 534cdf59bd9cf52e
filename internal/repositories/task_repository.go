package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetBoard(farmerID, date string) ([]models.TaskItem, error) {
	var items []models.TaskItem
	result := r.db.Where("farmer_id = ? AND board_date = ?", farmerID, date).
		Order("position ASC").
		Find(&items)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get task board")
	}
	return items, nil
}

// PutBoard seeds a board inside a transaction; a concurrent or repeated seed
// for the same date leaves exactly one board.
func (r *TaskRepository) PutBoard(farmerID, date string, items []models.TaskItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TaskItem{}).
			Where("farmer_id = ? AND board_date = ?", farmerID, date).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to check task board")
		}
		if count > 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to seed task board")
		}
		return nil
	})
}

func (r *TaskRepository) CompletedTaskIDs(farmerID, date string) (map[string]bool, error) {
	var completions []models.TaskCompletion
	result := r.db.Where("farmer_id = ? AND board_date = ?", farmerID, date).Find(&completions)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get completions")
	}

	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		done[c.TaskID] = true
	}
	return done, nil
}

func (r *TaskRepository) MarkCompleted(c *models.TaskCompletion) error {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(c)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to mark task completed")
	}
	return nil
}
