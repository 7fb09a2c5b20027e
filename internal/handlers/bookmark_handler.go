package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prepquiz-service/internal/models"
	"prepquiz-service/internal/service"
)

type BookmarkHandler struct {
	Service *service.BookmarkService
}

func NewBookmarkHandler(s *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{Service: s}
}

func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	var req models.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bookmark, err := h.Service.Add(context.Background(), &req)
	if err != nil {
		log.Printf("Error adding bookmark: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add bookmark"})
		return
	}
	c.JSON(http.StatusOK, bookmark)
}

func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	userID := c.Param("user_id")
	bookmarks, err := h.Service.List(context.Background(), userID)
	if err != nil {
		log.Printf("Error fetching bookmarks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookmarks"})
		return
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}
	c.JSON(http.StatusOK, bookmarks)
}
