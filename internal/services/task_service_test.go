package services

import (
	"sync"
	"testing"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

func newTaskFixture(t *testing.T) (*TaskService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	svc := NewTaskService(mem, mem, testClock(t), NewUserLocks())
	return svc, mem
}

func TestBoardSeedsOnFirstRead(t *testing.T) {
	svc, _ := newTaskFixture(t)

	board, err := svc.Board("f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != 8 {
		t.Fatalf("len(board) = %d, want 8", len(board))
	}
	for _, task := range board {
		if task.Completed {
			t.Errorf("task %s seeded as completed", task.TaskID)
		}
	}

	// a second read returns the same board
	again, err := svc.Board("f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(board) || again[0].TaskID != board[0].TaskID {
		t.Error("second read returned a different board")
	}
}

func TestCompleteTaskAwardsPoints(t *testing.T) {
	svc, _ := newTaskFixture(t)

	if _, err := svc.Board("f1"); err != nil {
		t.Fatal(err)
	}

	result, err := svc.CompleteTask("f1", "2025-06-15", "inspect_birds")
	if err != nil {
		t.Fatal(err)
	}
	if result.AlreadyCompleted {
		t.Error("fresh completion flagged as repeat")
	}
	if result.PointsAwarded != 15 {
		t.Errorf("PointsAwarded = %d, want 15", result.PointsAwarded)
	}
	if result.Progress.Points != 15 || result.Progress.Level != 1 {
		t.Errorf("progress = %d points level %d, want 15 points level 1", result.Progress.Points, result.Progress.Level)
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	svc, _ := newTaskFixture(t)

	if _, err := svc.Board("f1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteTask("f1", "2025-06-15", "clean_water"); err != nil {
		t.Fatal(err)
	}

	repeat, err := svc.CompleteTask("f1", "2025-06-15", "clean_water")
	if err != nil {
		t.Fatal(err)
	}
	if !repeat.AlreadyCompleted {
		t.Error("repeat completion not flagged")
	}
	if repeat.PointsAwarded != 0 || len(repeat.NewBadges) != 0 {
		t.Errorf("repeat completion awarded points=%d badges=%v", repeat.PointsAwarded, repeat.NewBadges)
	}
	if repeat.Progress.Points != 10 {
		t.Errorf("points = %d, want 10 after repeat", repeat.Progress.Points)
	}
}

func TestCompleteTaskLevelUp(t *testing.T) {
	svc, mem := newTaskFixture(t)

	if _, err := svc.Board("f1"); err != nil {
		t.Fatal(err)
	}
	prog := models.NewFarmerProgress("f1")
	prog.Points = 95
	if err := mem.SaveProgress(prog); err != nil {
		t.Fatal(err)
	}

	result, err := svc.CompleteTask("f1", "2025-06-15", "inspect_birds")
	if err != nil {
		t.Fatal(err)
	}
	if result.Progress.Points != 110 || result.Progress.Level != 2 {
		t.Errorf("progress = %d points level %d, want 110 points level 2", result.Progress.Points, result.Progress.Level)
	}
	if len(result.NewBadges) != 1 || result.NewBadges[0] != "Level 2 Master" {
		t.Errorf("NewBadges = %v, want [Level 2 Master]", result.NewBadges)
	}
}

func TestCompleteTaskCrossesTwoLevels(t *testing.T) {
	svc, mem := newTaskFixture(t)

	if _, err := svc.Board("f1"); err != nil {
		t.Fatal(err)
	}
	prog := models.NewFarmerProgress("f1")
	prog.Points = 185
	if err := mem.SaveProgress(prog); err != nil {
		t.Fatal(err)
	}

	// 185 + 15 = 200 crosses both the 100 and 200 thresholds
	result, err := svc.CompleteTask("f1", "2025-06-15", "record_mortality")
	if err != nil {
		t.Fatal(err)
	}
	if result.Progress.Level != 3 {
		t.Errorf("Level = %d, want 3", result.Progress.Level)
	}
	want := []string{"Level 2 Master", "Level 3 Master"}
	if len(result.NewBadges) != 2 || result.NewBadges[0] != want[0] || result.NewBadges[1] != want[1] {
		t.Errorf("NewBadges = %v, want %v", result.NewBadges, want)
	}
}

func TestCompleteTaskUnseededDate(t *testing.T) {
	svc, _ := newTaskFixture(t)

	_, err := svc.CompleteTask("f1", "2025-06-14", "clean_water")
	if errors.CodeOf(err) != errors.ErrCodeNoTasksForDate {
		t.Errorf("code = %s, want %s", errors.CodeOf(err), errors.ErrCodeNoTasksForDate)
	}
}

func TestCompleteTaskUnknownID(t *testing.T) {
	svc, _ := newTaskFixture(t)

	if _, err := svc.Board("f1"); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CompleteTask("f1", "2025-06-15", "paint_the_shed")
	if errors.CodeOf(err) != errors.ErrCodeUnknownTask {
		t.Errorf("code = %s, want %s", errors.CodeOf(err), errors.ErrCodeUnknownTask)
	}
}

func TestConcurrentCompletionsLoseNoPoints(t *testing.T) {
	svc, _ := newTaskFixture(t)

	board, err := svc.Board("f1")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for _, task := range board {
		wg.Add(1)
		go func(taskID string) {
			defer wg.Done()
			if _, err := svc.CompleteTask("f1", "2025-06-15", taskID); err != nil {
				t.Errorf("CompleteTask(%s): %v", taskID, err)
			}
		}(task.TaskID)
	}
	wg.Wait()

	total := 0
	for _, task := range board {
		total += task.Points
	}

	summary, err := svc.Summary("f1")
	if err != nil {
		t.Fatal(err)
	}
	if summary.Points != int64(total) {
		t.Errorf("Points = %d, want %d", summary.Points, total)
	}
	if summary.CompletedToday != len(board) {
		t.Errorf("CompletedToday = %d, want %d", summary.CompletedToday, len(board))
	}
	if summary.CompletionRate != 100 {
		t.Errorf("CompletionRate = %.1f, want 100", summary.CompletionRate)
	}
}

func TestSummaryOnFreshFarmer(t *testing.T) {
	svc, _ := newTaskFixture(t)

	summary, err := svc.Summary("new-farmer")
	if err != nil {
		t.Fatal(err)
	}
	if summary.Points != 0 || summary.Level != 1 {
		t.Errorf("fresh summary = %d points level %d, want 0 points level 1", summary.Points, summary.Level)
	}
	if summary.TotalToday != 8 || summary.CompletedToday != 0 {
		t.Errorf("today = %d/%d, want 0/8", summary.CompletedToday, summary.TotalToday)
	}
	if summary.NextLevelThreshold != 100 {
		t.Errorf("NextLevelThreshold = %d, want 100", summary.NextLevelThreshold)
	}
}
