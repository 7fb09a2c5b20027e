package repository

import (
	"context"

	"prepquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatusRepository struct {
	Col *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{Col: db.Collection("status_checks")}
}

func (r *StatusRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	_, err := r.Col.InsertOne(ctx, check)
	return err
}

func (r *StatusRepository) FindAll(ctx context.Context, limit int64) ([]models.StatusCheck, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var checks []models.StatusCheck
	for cur.Next(ctx) {
		var check models.StatusCheck
		if err := cur.Decode(&check); err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}
	return checks, cur.Err()
}
