package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prepquiz-service/internal/service"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

func NewAnalyticsHandler(s *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// GetAnalytics returns the aggregate report for one user.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID := c.Param("user_id")
	report, err := h.Service.Report(context.Background(), userID)
	if err != nil {
		log.Printf("Error fetching analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, report)
}
