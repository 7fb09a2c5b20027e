package repository

import (
	"context"

	"prepquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookmarkRepository struct {
	Col *mongo.Collection
}

func NewBookmarkRepository(db *mongo.Database) *BookmarkRepository {
	return &BookmarkRepository{Col: db.Collection("bookmarks")}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	_, err := r.Col.InsertOne(ctx, bookmark)
	return err
}

// FindByUser returns a user's bookmarks, newest first, up to limit.
func (r *BookmarkRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]models.Bookmark, error) {
	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var bookmarks []models.Bookmark
	for cur.Next(ctx) {
		var bookmark models.Bookmark
		if err := cur.Decode(&bookmark); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}
	return bookmarks, cur.Err()
}
