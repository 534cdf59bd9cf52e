package services

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/seed"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

// TaskService owns the daily task board and the progress state machine
// behind it: points, levels and badges.
type TaskService struct {
	tasks    store.TaskStore
	progress store.ProgressStore
	clock    clockwork.Clock
	locks    *UserLocks
	catalog  []seed.TaskSpec
}

func NewTaskService(tasks store.TaskStore, progress store.ProgressStore, clock clockwork.Clock, locks *UserLocks) *TaskService {
	return &TaskService{
		tasks:    tasks,
		progress: progress,
		clock:    clock,
		locks:    locks,
		catalog:  seed.DailyTaskCatalog(),
	}
}

// CompleteTaskResult reports what a single completion changed. A repeated
// completion of the same task is flagged and awards nothing.
type CompleteTaskResult struct {
	AlreadyCompleted bool                  `json:"already_completed"`
	PointsAwarded    int                   `json:"points_awarded"`
	NewBadges        []string              `json:"new_badges"`
	Progress         models.FarmerProgress `json:"progress"`
}

func (s *TaskService) today() string {
	return s.clock.Now().Format(models.DateLayout)
}

// ensureBoard lazily seeds the farmer's board for a date on first read.
func (s *TaskService) ensureBoard(farmerID, date string) ([]models.TaskItem, error) {
	items, err := s.tasks.GetBoard(farmerID, date)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load task board")
	}
	if len(items) > 0 {
		return items, nil
	}

	items = make([]models.TaskItem, 0, len(s.catalog))
	for i, spec := range s.catalog {
		items = append(items, models.TaskItem{
			FarmerID:  farmerID,
			BoardDate: date,
			TaskID:    spec.TaskID,
			Label:     spec.Label,
			Points:    spec.Points,
			Position:  i,
		})
	}
	if err := s.tasks.PutBoard(farmerID, date, items); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to seed task board")
	}
	// Re-read so a concurrent seeder's board wins consistently.
	items, err = s.tasks.GetBoard(farmerID, date)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load task board")
	}
	return items, nil
}

// Board returns today's task list for the farmer, seeding it on first access.
func (s *TaskService) Board(farmerID string) ([]models.TaskView, error) {
	date := s.today()
	items, err := s.ensureBoard(farmerID, date)
	if err != nil {
		return nil, err
	}
	done, err := s.tasks.CompletedTaskIDs(farmerID, date)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load completions")
	}

	views := make([]models.TaskView, 0, len(items))
	for _, item := range items {
		views = append(views, models.TaskView{
			TaskID:    item.TaskID,
			Label:     item.Label,
			Points:    item.Points,
			Completed: done[item.TaskID],
		})
	}
	return views, nil
}

// CompleteTask marks a task done for a given date and applies its points to
// the farmer's progress. Completing an already-completed task is a no-op.
func (s *TaskService) CompleteTask(farmerID, date, taskID string) (*CompleteTaskResult, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, errors.New(errors.ErrCodeValidation, "date must be in YYYY-MM-DD format")
	}

	unlock := s.locks.Lock(farmerID)
	defer unlock()

	items, err := s.tasks.GetBoard(farmerID, date)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load task board")
	}
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeNoTasksForDate, fmt.Sprintf("no task board for %s", date))
	}

	var task *models.TaskItem
	for i := range items {
		if items[i].TaskID == taskID {
			task = &items[i]
			break
		}
	}
	if task == nil {
		return nil, errors.New(errors.ErrCodeUnknownTask, fmt.Sprintf("task %q is not on the board for %s", taskID, date))
	}

	done, err := s.tasks.CompletedTaskIDs(farmerID, date)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load completions")
	}

	prog, err := s.loadProgress(farmerID)
	if err != nil {
		return nil, err
	}

	if done[taskID] {
		return &CompleteTaskResult{AlreadyCompleted: true, Progress: *prog}, nil
	}

	if err := s.tasks.MarkCompleted(&models.TaskCompletion{
		FarmerID:  farmerID,
		BoardDate: date,
		TaskID:    taskID,
	}); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to record completion")
	}

	newBadges := prog.AddPoints(task.Points)
	if err := s.progress.SaveProgress(prog); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to save progress")
	}

	return &CompleteTaskResult{
		PointsAwarded: task.Points,
		NewBadges:     newBadges,
		Progress:      *prog,
	}, nil
}

// CompleteTaskToday is the common path used by the HTTP surface.
func (s *TaskService) CompleteTaskToday(farmerID, taskID string) (*CompleteTaskResult, error) {
	return s.CompleteTask(farmerID, s.today(), taskID)
}

// Summary combines progress with today's completion rate.
func (s *TaskService) Summary(farmerID string) (*models.GamificationSummary, error) {
	date := s.today()
	items, err := s.ensureBoard(farmerID, date)
	if err != nil {
		return nil, err
	}
	done, err := s.tasks.CompletedTaskIDs(farmerID, date)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load completions")
	}
	prog, err := s.loadProgress(farmerID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, item := range items {
		if done[item.TaskID] {
			completed++
		}
	}
	rate := 0.0
	if len(items) > 0 {
		rate = float64(completed) / float64(len(items)) * 100
	}

	return &models.GamificationSummary{
		Points:             prog.Points,
		Level:              prog.Level,
		Badges:             prog.Badges,
		CompletedToday:     completed,
		TotalToday:         len(items),
		CompletionRate:     rate,
		NextLevelThreshold: prog.NextLevelThreshold(),
	}, nil
}

// Progress returns the farmer's current progress, initializing it on first use.
func (s *TaskService) Progress(farmerID string) (*models.FarmerProgress, error) {
	unlock := s.locks.Lock(farmerID)
	defer unlock()
	return s.loadProgress(farmerID)
}

func (s *TaskService) loadProgress(farmerID string) (*models.FarmerProgress, error) {
	prog, err := s.progress.GetProgress(farmerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load progress")
	}
	if prog == nil {
		prog = models.NewFarmerProgress(farmerID)
		if err := s.progress.SaveProgress(prog); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to init progress")
		}
	}
	return prog, nil
}
