package service

import (
	"math"
	"testing"

	"prepquiz-service/internal/models"
)

func TestScoreAnswersPartialSubmission(t *testing.T) {
	req := &models.QuizSubmitRequest{
		TotalQuestions: 3,
		Answers:        models.AnswerMap{1: "A", 2: "B"},
		CorrectAnswers: models.AnswerMap{1: "A", 2: "C", 3: "D"},
	}
	correct, detailed := scoreAnswers(req)

	if correct != 1 {
		t.Errorf("Expected 1 correct, got %d", correct)
	}
	if len(detailed) != 3 {
		t.Fatalf("Expected 3 detailed answers, got %d", len(detailed))
	}
	if !detailed[0].IsCorrect || detailed[1].IsCorrect || detailed[2].IsCorrect {
		t.Errorf("Unexpected correctness flags: %+v", detailed)
	}
	if detailed[2].UserAnswer != nil {
		t.Error("Question 3 was not answered, expected nil user answer")
	}

	score := scorePercentage(correct, req.TotalQuestions)
	if math.Abs(score-100.0/3.0) > 1e-9 {
		t.Errorf("Expected score 100/3, got %v", score)
	}
}

func TestScoreAnswersCaseSensitive(t *testing.T) {
	req := &models.QuizSubmitRequest{
		TotalQuestions: 1,
		Answers:        models.AnswerMap{1: "newton"},
		CorrectAnswers: models.AnswerMap{1: "Newton"},
	}
	correct, _ := scoreAnswers(req)
	if correct != 0 {
		t.Error("Matching must be case-sensitive")
	}
}

func TestScoreAnswersMissingKeyEntryNeverMatches(t *testing.T) {
	req := &models.QuizSubmitRequest{
		TotalQuestions: 2,
		Answers:        models.AnswerMap{1: "", 2: "A"},
		CorrectAnswers: models.AnswerMap{},
	}
	correct, detailed := scoreAnswers(req)
	if correct != 0 {
		t.Errorf("Expected 0 correct with empty key, got %d", correct)
	}
	if detailed[0].CorrectAnswer != "" || detailed[1].CorrectAnswer != "" {
		t.Error("Missing key entries should record an empty correct answer")
	}
}

func TestScoreAnswersBookmarkFlags(t *testing.T) {
	req := &models.QuizSubmitRequest{
		TotalQuestions:      3,
		Answers:             models.AnswerMap{1: "A"},
		BookmarkedQuestions: []int{2},
		CorrectAnswers:      models.AnswerMap{1: "A", 2: "B", 3: "C"},
	}
	_, detailed := scoreAnswers(req)
	if detailed[0].WasBookmarked || !detailed[1].WasBookmarked || detailed[2].WasBookmarked {
		t.Errorf("Unexpected bookmark flags: %+v", detailed)
	}
}

func TestScoreAnswersDetailedPlaceholders(t *testing.T) {
	req := &models.QuizSubmitRequest{
		TotalQuestions: 1,
		Answers:        models.AnswerMap{1: "A"},
		CorrectAnswers: models.AnswerMap{1: "A"},
	}
	_, detailed := scoreAnswers(req)
	if detailed[0].Question != "Question 1" {
		t.Errorf("Expected placeholder question text, got %q", detailed[0].Question)
	}
	if detailed[0].Options == nil || len(detailed[0].Options) != 0 {
		t.Errorf("Expected empty (non-nil) options, got %v", detailed[0].Options)
	}
}

func TestScorePercentage(t *testing.T) {
	cases := []struct {
		correct  int
		total    int
		expected float64
	}{
		{0, 0, 0}, // guard against division by zero
		{0, 4, 0},
		{2, 4, 50},
		{4, 4, 100},
	}
	for _, tc := range cases {
		if got := scorePercentage(tc.correct, tc.total); got != tc.expected {
			t.Errorf("scorePercentage(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.expected)
		}
	}
}
