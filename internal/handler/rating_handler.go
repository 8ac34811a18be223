package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wakescroll/backend/internal/rating"
)

// RatingHandler scores the onboarding quiz. The endpoint is unauthenticated:
// onboarding happens before signup, and the answers travel with the request
// instead of living in shared state.
type RatingHandler struct{}

type ratingRequest struct {
	Answers rating.Answers `json:"answers"`
}

func NewRatingHandler() *RatingHandler {
	return &RatingHandler{}
}

func (h *RatingHandler) Quiz(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current":                 rating.CalculateRating(req.Answers),
		"potential":               rating.CalculatePotentialRating(req.Answers),
		"poorLifestylePercentage": rating.CalculatePoorLifestylePercentage(req.Answers),
	})
}
