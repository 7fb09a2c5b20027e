package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"prepquiz-service/internal/models"
	"prepquiz-service/internal/repository"
)

// bookmarkListLimit caps how many bookmarks a single listing returns.
const bookmarkListLimit = 100

type BookmarkService struct {
	Repo *repository.BookmarkRepository
}

func NewBookmarkService(repo *repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{Repo: repo}
}

// Add persists a new bookmark and returns the stored record. No
// de-duplication: bookmarking the same question twice creates two
// records.
func (s *BookmarkService) Add(ctx context.Context, req *models.BookmarkRequest) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{
		BookmarkID:    uuid.NewString(),
		UserID:        req.UserID,
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Subject:       req.Subject,
		Module:        req.Module,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// List returns a user's bookmarks, newest first.
func (s *BookmarkService) List(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return s.Repo.FindByUser(ctx, userID, bookmarkListLimit)
}
