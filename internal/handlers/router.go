package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thoughtcode-25/DIGI-FARM/internal/middleware"
)

type RouterConfig struct {
	JWTSecret   string
	RateLimiter *middleware.RateLimiter

	AuthHandler        *AuthHandler
	RecordHandler      *RecordHandler
	FinanceHandler     *FinanceHandler
	TaskHandler        *TaskHandler
	LeaderboardHandler *LeaderboardHandler
	ReferenceHandler   *ReferenceHandler
	ChatHandler        *ChatHandler
	AdviceHandler      *AdviceHandler
	AlertHandler       *AlertHandler
	OTPHandler         *OTPHandler
	ReportHandler      *ReportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/login", cfg.AuthHandler.Login)
		api.POST("/otp/send", cfg.OTPHandler.Send)
		api.POST("/otp/verify", cfg.OTPHandler.Verify)
	}

	protected := api.Group("/")
	protected.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		protected.GET("/me", cfg.AuthHandler.Me)
		protected.PATCH("/me", cfg.AuthHandler.UpdateProfile)

		protected.GET("/dashboard", cfg.RecordHandler.Dashboard)
		protected.PUT("/records", cfg.RecordHandler.UpsertRecord)
		protected.GET("/records/series", cfg.RecordHandler.Series)

		protected.POST("/finance/entries", cfg.FinanceHandler.AddEntry)
		protected.PUT("/finance/entries/:id", cfg.FinanceHandler.UpdateEntry)
		protected.DELETE("/finance/entries/:id", cfg.FinanceHandler.DeleteEntry)
		protected.GET("/finance/summary", cfg.FinanceHandler.Summary)

		protected.GET("/tasks", cfg.TaskHandler.Board)
		protected.POST("/tasks/:id/complete", cfg.TaskHandler.Complete)
		protected.GET("/gamification", cfg.TaskHandler.Summary)

		protected.GET("/leaderboard", cfg.LeaderboardHandler.Leaderboard)
		protected.GET("/leaderboard/ranks", cfg.LeaderboardHandler.Ranks)

		protected.GET("/diseases", cfg.ReferenceHandler.Diseases)
		protected.GET("/schemes", cfg.ReferenceHandler.Schemes)
		protected.GET("/statistics", cfg.ReferenceHandler.Statistics)

		protected.POST("/chat", cfg.ChatHandler.Send)
		protected.GET("/chat", cfg.ChatHandler.History)
		protected.POST("/visits", cfg.ChatHandler.AddVisit)
		protected.GET("/visits/qr", cfg.ChatHandler.VisitQR)

		protected.POST("/advice", cfg.AdviceHandler.Ask)
		protected.POST("/advice/image", cfg.AdviceHandler.Triage)

		protected.GET("/alerts", cfg.AlertHandler.Recent)
		protected.GET("/alerts/temperature", cfg.AlertHandler.CheckTemperature)

		protected.GET("/reports/export", cfg.ReportHandler.Export)
	}

	return r
}
