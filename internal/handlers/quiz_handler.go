package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prepquiz-service/internal/models"
	"prepquiz-service/internal/service"
)

const defaultHistoryLimit = 50

type QuizHandler struct {
	QuizService    *service.QuizService
	AttemptService *service.AttemptService
}

func NewQuizHandler(qs *service.QuizService, as *service.AttemptService) *QuizHandler {
	return &QuizHandler{QuizService: qs, AttemptService: as}
}

// GenerateQuiz assembles a quiz for the requested subject and module.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req models.QuizGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quiz, err := h.QuizService.Generate(&req)
	if err != nil {
		log.Printf("Error generating quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quiz"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// SubmitQuiz scores a submission and saves the attempt.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req models.QuizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attempt, err := h.AttemptService.Submit(context.Background(), &req)
	if err != nil {
		log.Printf("Error submitting quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quiz"})
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// GetHistory returns a user's attempts, newest first.
func (h *QuizHandler) GetHistory(c *gin.Context) {
	userID := c.Param("user_id")
	limit := int64(defaultHistoryLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}
	attempts, err := h.AttemptService.History(context.Background(), userID, limit)
	if err != nil {
		log.Printf("Error fetching quiz history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quiz history"})
		return
	}
	if attempts == nil {
		attempts = []models.QuizAttempt{}
	}
	c.JSON(http.StatusOK, attempts)
}
