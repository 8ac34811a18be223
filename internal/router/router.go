package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wakescroll/backend/internal/handler"
	"wakescroll/backend/internal/middleware"
	"wakescroll/backend/internal/service"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	XP      *handler.XPHandler
	Journal *handler.JournalHandler
	Timer   *handler.TimerHandler
	Goal    *handler.GoalHandler
	Rating  *handler.RatingHandler
}

func New(authService *service.AuthService, h Handlers, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Onboarding scoring runs before signup.
	api.POST("/rating/quiz", h.Rating.Quiz)

	authed := api.Group("")
	authed.Use(middleware.Auth(authService))

	xp := authed.Group("/xp")
	xp.GET("", h.XP.GetXP)
	xp.POST("/add", h.XP.AddXP)
	xp.GET("/today", h.XP.GetTodaysXP)
	xp.GET("/history", h.XP.GetHistory)
	xp.GET("/streak", h.XP.GetStreak)
	xp.POST("/streak/validate", h.XP.ValidateStreak)
	xp.POST("/catch-scroll/tap", h.XP.AddCatchScrollTap)
	xp.GET("/catch-scroll/today", h.XP.GetTodaysCatchScroll)

	journal := authed.Group("/journal")
	journal.POST("", h.Journal.Save)
	journal.GET("", h.Journal.List)
	journal.GET("/today", h.Journal.Today)
	journal.GET("/date/:date", h.Journal.ByDate)
	journal.GET("/stats", h.Journal.Stats)
	journal.GET("/calendar", h.Journal.Calendar)
	journal.GET("/monthly", h.Journal.Monthly)
	journal.GET("/weekly", h.Journal.Weekly)
	journal.DELETE("/:id", h.Journal.Delete)

	timer := authed.Group("/timer")
	timer.POST("/sessions", h.Timer.Save)
	timer.GET("/sessions", h.Timer.List)
	timer.GET("/sessions/today", h.Timer.Today)
	timer.GET("/sessions/date/:date", h.Timer.ByDate)
	timer.GET("/stats", h.Timer.Stats)
	timer.GET("/calendar", h.Timer.Calendar)
	timer.GET("/monthly", h.Timer.Monthly)
	timer.GET("/weekly", h.Timer.Weekly)
	timer.DELETE("/sessions/:id", h.Timer.Delete)

	goals := authed.Group("/goals")
	goals.POST("", h.Goal.Create)
	goals.GET("", h.Goal.List)
	goals.DELETE("/:id", h.Goal.Delete)

	return engine
}
