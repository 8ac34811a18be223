package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wakescroll/backend/internal/middleware"
	"wakescroll/backend/internal/service"
)

type XPHandler struct {
	xpService *service.XPService
}

type addXPRequest struct {
	Amount int `json:"amount"`
}

func NewXPHandler(xpService *service.XPService) *XPHandler {
	return &XPHandler{xpService: xpService}
}

func (h *XPHandler) GetXP(c *gin.Context) {
	total, apiErr := h.xpService.GetXP(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *XPHandler) AddXP(c *gin.Context) {
	var req addXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	total, apiErr := h.xpService.AddXP(c.Request.Context(), middleware.UserID(c), req.Amount)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *XPHandler) GetTodaysXP(c *gin.Context) {
	event, apiErr := h.xpService.GetTodaysXP(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": event.Date, "xp": event.XP})
}

func (h *XPHandler) GetHistory(c *gin.Context) {
	history, apiErr := h.xpService.GetHistory(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *XPHandler) GetStreak(c *gin.Context) {
	current, apiErr := h.xpService.GetStreak(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": current})
}

func (h *XPHandler) ValidateStreak(c *gin.Context) {
	fixed, apiErr := h.xpService.ValidateAndFixStreak(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": fixed})
}

func (h *XPHandler) AddCatchScrollTap(c *gin.Context) {
	total, today, apiErr := h.xpService.AddCatchScrollTap(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "today": today})
}

func (h *XPHandler) GetTodaysCatchScroll(c *gin.Context) {
	today, apiErr := h.xpService.GetTodaysCatchScroll(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"today": today})
}
