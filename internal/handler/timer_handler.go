package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wakescroll/backend/internal/middleware"
	"wakescroll/backend/internal/service"
)

type TimerHandler struct {
	timerService *service.TimerService
}

type saveTimerSessionRequest struct {
	DurationMinutes int `json:"durationMinutes"`
}

func NewTimerHandler(timerService *service.TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

func (h *TimerHandler) Save(c *gin.Context) {
	var req saveTimerSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	session, apiErr := h.timerService.Save(c.Request.Context(), middleware.UserID(c), req.DurationMinutes)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

func (h *TimerHandler) List(c *gin.Context) {
	sessions, apiErr := h.timerService.Sessions(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *TimerHandler) Today(c *gin.Context) {
	sessions, apiErr := h.timerService.TodaysSessions(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *TimerHandler) ByDate(c *gin.Context) {
	sessions, apiErr := h.timerService.SessionsByDate(c.Request.Context(), middleware.UserID(c), c.Param("date"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *TimerHandler) Stats(c *gin.Context) {
	stats, apiErr := h.timerService.Stats(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *TimerHandler) Calendar(c *gin.Context) {
	year, month, paramErr := yearMonth(c)
	if paramErr != nil {
		writeError(c, paramErr)
		return
	}

	days, apiErr := h.timerService.CalendarData(c.Request.Context(), middleware.UserID(c), year, time.Month(month))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *TimerHandler) Monthly(c *gin.Context) {
	year, month, paramErr := yearMonth(c)
	if paramErr != nil {
		writeError(c, paramErr)
		return
	}

	stats, apiErr := h.timerService.MonthlyStats(c.Request.Context(), middleware.UserID(c), year, time.Month(month))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *TimerHandler) Weekly(c *gin.Context) {
	days, apiErr := h.timerService.WeeklyData(c.Request.Context(), middleware.UserID(c), c.Query("start"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *TimerHandler) Delete(c *gin.Context) {
	deleted, apiErr := h.timerService.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
