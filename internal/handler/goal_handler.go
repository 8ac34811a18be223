package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wakescroll/backend/internal/middleware"
	"wakescroll/backend/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

type createGoalRequest struct {
	Title               string `json:"title"`
	TargetMinutesPerDay int    `json:"targetMinutesPerDay"`
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	goal, apiErr := h.goalService.Create(c.Request.Context(), middleware.UserID(c), req.Title, req.TargetMinutesPerDay)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

func (h *GoalHandler) List(c *gin.Context) {
	goals, apiErr := h.goalService.List(c.Request.Context(), middleware.UserID(c))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (h *GoalHandler) Delete(c *gin.Context) {
	deleted, apiErr := h.goalService.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
