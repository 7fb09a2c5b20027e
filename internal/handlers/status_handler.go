package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prepquiz-service/internal/models"
	"prepquiz-service/internal/service"
)

type StatusHandler struct {
	Service *service.StatusService
}

func NewStatusHandler(s *service.StatusService) *StatusHandler {
	return &StatusHandler{Service: s}
}

func (h *StatusHandler) CreateStatusCheck(c *gin.Context) {
	var req models.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	check, err := h.Service.Create(context.Background(), &req)
	if err != nil {
		log.Printf("Error creating status check: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create status check"})
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *StatusHandler) ListStatusChecks(c *gin.Context) {
	checks, err := h.Service.List(context.Background())
	if err != nil {
		log.Printf("Error fetching status checks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status checks"})
		return
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
