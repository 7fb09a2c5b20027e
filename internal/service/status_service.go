package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"prepquiz-service/internal/models"
	"prepquiz-service/internal/repository"
)

const statusListLimit = 1000

type StatusService struct {
	Repo *repository.StatusRepository
}

func NewStatusService(repo *repository.StatusRepository) *StatusService {
	return &StatusService{Repo: repo}
}

func (s *StatusService) Create(ctx context.Context, req *models.StatusCheckCreate) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	return s.Repo.FindAll(ctx, statusListLimit)
}
