package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/metrics"
	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// GET /api/tasks
func (h *TaskHandler) Board(c *gin.Context) {
	board, err := h.tasks.Board(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": board})
}

// POST /api/tasks/:id/complete
// optional body: { "date": "YYYY-MM-DD" } defaults to today
func (h *TaskHandler) Complete(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	// body is optional, ignore bind errors on an empty body
	_ = c.ShouldBindJSON(&req)

	var result *services.CompleteTaskResult
	var err error
	if req.Date == "" {
		result, err = h.tasks.CompleteTaskToday(farmerID(c), c.Param("id"))
	} else {
		result, err = h.tasks.CompleteTask(farmerID(c), req.Date, c.Param("id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.AlreadyCompleted {
		metrics.TasksCompleted.Inc()
		metrics.LevelUps.Add(float64(len(result.NewBadges)))
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/gamification
func (h *TaskHandler) Summary(c *gin.Context) {
	summary, err := h.tasks.Summary(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
