package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prepquiz-service/internal/models"
	"prepquiz-service/internal/repository"
)

type AttemptService struct {
	Repo *repository.AttemptRepository
}

func NewAttemptService(repo *repository.AttemptRepository) *AttemptService {
	return &AttemptService{Repo: repo}
}

// Submit scores a submission and persists the resulting attempt. The
// attempt is written whole or not at all; on a storage error nothing is
// returned and nothing partial remains.
//
// Scoring trusts the correct_answers key the client echoes back.
// Generated quizzes are not retained server-side, so a client could
// fabricate its own key; that trade-off is inherent to the stateless
// design.
func (s *AttemptService) Submit(ctx context.Context, req *models.QuizSubmitRequest) (*models.QuizAttempt, error) {
	correctCount, detailed := scoreAnswers(req)

	attempt := &models.QuizAttempt{
		AttemptID:          uuid.NewString(),
		QuizID:             req.QuizID,
		UserID:             req.UserID,
		Subject:            req.Subject,
		Module:             req.Module,
		ExamFormat:         req.ExamFormat,
		Difficulty:         req.Difficulty,
		TotalQuestions:     req.TotalQuestions,
		AttemptedQuestions: len(req.Answers),
		CorrectAnswers:     correctCount,
		ScorePercentage:    scorePercentage(correctCount, req.TotalQuestions),
		TimeTakenSeconds:   req.TimeTakenSeconds,
		Timestamp:          time.Now().UTC(),
		DetailedAnswers:    detailed,
	}

	if err := s.Repo.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// History returns a user's attempts, newest first.
func (s *AttemptService) History(ctx context.Context, userID string, limit int64) ([]models.QuizAttempt, error) {
	return s.Repo.FindByUser(ctx, userID, limit)
}

// scoreAnswers walks question numbers 1..total_questions, not just the
// numbers present in the answers map, so unanswered questions still get
// a detailed entry. A question is correct iff the user answered and the
// answer equals the key entry exactly; no normalization is applied.
func scoreAnswers(req *models.QuizSubmitRequest) (int, []models.DetailedAnswer) {
	bookmarked := make(map[int]bool, len(req.BookmarkedQuestions))
	for _, num := range req.BookmarkedQuestions {
		bookmarked[num] = true
	}

	correctCount := 0
	detailed := make([]models.DetailedAnswer, 0, req.TotalQuestions)
	for num := 1; num <= req.TotalQuestions; num++ {
		userAnswer := req.Answers.Get(num)
		correctAnswer, hasKey := req.CorrectAnswers[num]

		// A missing key entry never matches, even an empty user answer.
		isCorrect := userAnswer != nil && hasKey && *userAnswer == correctAnswer
		if isCorrect {
			correctCount++
		}

		detailed = append(detailed, models.DetailedAnswer{
			QuestionNumber: num,
			Question:       fmt.Sprintf("Question %d", num),
			Options:        []string{},
			UserAnswer:     userAnswer,
			CorrectAnswer:  correctAnswer,
			IsCorrect:      isCorrect,
			WasBookmarked:  bookmarked[num],
		})
	}
	return correctCount, detailed
}

func scorePercentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
