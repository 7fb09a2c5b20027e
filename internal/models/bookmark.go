package models

import "time"

type BookmarkRequest struct {
	UserID        string   `json:"user_id" binding:"required"`
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Subject       string   `json:"subject" binding:"required"`
	Module        string   `json:"module" binding:"required"`
}

// Bookmark is a saved question. Bookmarking the same question twice
// creates two records; there is no update or delete.
type Bookmark struct {
	BookmarkID    string    `bson:"bookmark_id" json:"bookmark_id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Question      string    `bson:"question" json:"question"`
	Options       []string  `bson:"options" json:"options"`
	CorrectAnswer string    `bson:"correct_answer" json:"correct_answer"`
	Subject       string    `bson:"subject" json:"subject"`
	Module        string    `bson:"module" json:"module"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
}
