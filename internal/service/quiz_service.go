package service

import (
	"github.com/google/uuid"

	"prepquiz-service/internal/bank"
	"prepquiz-service/internal/models"
	"prepquiz-service/internal/selection"
)

// minutesPerQuestion maps known exam formats to their per-question time
// allowance. Unknown formats fall back to defaultMinutesPerQuestion.
var minutesPerQuestion = map[string]float64{
	"JEE Main":         3,
	"JEE Advanced":     4,
	"NEET":             2.5,
	"General Practice": 2,
}

const defaultMinutesPerQuestion = 2

type QuizService struct {
	Sampler *selection.Sampler
}

func NewQuizService(sampler *selection.Sampler) *QuizService {
	return &QuizService{Sampler: sampler}
}

// Generate assembles a quiz from the static bank. The bank pool is
// padded with filler questions when it cannot cover the requested
// count, so the response always holds exactly NumQuestions questions.
// Nothing is persisted; the client keeps the quiz and echoes the answer
// key at submit time. Difficulty is echoed but not used for selection.
func (s *QuizService) Generate(req *models.QuizGenerateRequest) (*models.QuizGenerateResponse, error) {
	pool := bank.Lookup(req.Subject, req.Module)
	pool = selection.FillPool(pool, req.Subject, req.Module, req.NumQuestions)
	questions := s.Sampler.Sample(pool, req.NumQuestions)

	return &models.QuizGenerateResponse{
		QuizID:           uuid.NewString(),
		Subject:          req.Subject,
		Module:           req.Module,
		ExamFormat:       req.ExamFormat,
		Difficulty:       req.Difficulty,
		TimeLimitMinutes: TimeLimitMinutes(req.ExamFormat, req.NumQuestions),
		Questions:        questions,
	}, nil
}

// TimeLimitMinutes is floor(count * minutes per question) for the given
// exam format.
func TimeLimitMinutes(examFormat string, count int) int {
	perQuestion, ok := minutesPerQuestion[examFormat]
	if !ok {
		perQuestion = defaultMinutesPerQuestion
	}
	return int(float64(count) * perQuestion)
}
