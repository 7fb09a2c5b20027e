package models

import "time"

type SubjectPerformance struct {
	Total    int     `json:"total"`
	ScoreSum float64 `json:"score_sum"`
	Average  float64 `json:"average"`
}

type TrendPoint struct {
	Date    time.Time `json:"date"`
	Score   float64   `json:"score"`
	Subject string    `json:"subject"`
}

// WeakModule is a "<Subject> - <Module>" group whose mean score across
// a user's attempts is below 60.
type WeakModule struct {
	Module       string  `json:"module"`
	AverageScore float64 `json:"average_score"`
}

// AnalyticsReport summarizes one user's attempt history. A user with no
// attempts gets the zero report, not an error.
type AnalyticsReport struct {
	TotalQuizzes       int                           `json:"total_quizzes"`
	AverageScore       float64                       `json:"average_score"`
	SubjectPerformance map[string]SubjectPerformance `json:"subject_performance"`
	ScoreTrend         []TrendPoint                  `json:"score_trend"`
	WeakModules        []WeakModule                  `json:"weak_modules"`
}
