package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wakescroll/backend/internal/middleware"
	"wakescroll/backend/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

type saveJournalRequest struct {
	Text string `json:"text"`
	Mood string `json:"mood"`
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

func (h *JournalHandler) Save(c *gin.Context) {
	var req saveJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	entry, apiErr := h.journalService.Save(c.Request.Context(), middleware.UserID(c), req.Text, req.Mood)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *JournalHandler) List(c *gin.Context) {
	entries, apiErr := h.journalService.Entries(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *JournalHandler) Today(c *gin.Context) {
	entries, apiErr := h.journalService.TodaysEntries(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *JournalHandler) ByDate(c *gin.Context) {
	entries, apiErr := h.journalService.EntriesByDate(c.Request.Context(), middleware.UserID(c), c.Param("date"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *JournalHandler) Stats(c *gin.Context) {
	stats, apiErr := h.journalService.Stats(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *JournalHandler) Calendar(c *gin.Context) {
	year, month, paramErr := yearMonth(c)
	if paramErr != nil {
		writeError(c, paramErr)
		return
	}

	days, apiErr := h.journalService.CalendarData(c.Request.Context(), middleware.UserID(c), year, time.Month(month))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *JournalHandler) Monthly(c *gin.Context) {
	year, month, paramErr := yearMonth(c)
	if paramErr != nil {
		writeError(c, paramErr)
		return
	}

	stats, apiErr := h.journalService.MonthlyStats(c.Request.Context(), middleware.UserID(c), year, time.Month(month))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *JournalHandler) Weekly(c *gin.Context) {
	days, apiErr := h.journalService.WeeklyData(c.Request.Context(), middleware.UserID(c), c.Query("start"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *JournalHandler) Delete(c *gin.Context) {
	deleted, apiErr := h.journalService.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
