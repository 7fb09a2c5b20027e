package models

// QuizGenerateRequest describes the quiz a client wants. Difficulty is
// echoed back but does not filter selection yet.
type QuizGenerateRequest struct {
	Subject      string `json:"subject" binding:"required"`
	Module       string `json:"module" binding:"required"`
	ExamFormat   string `json:"exam_format" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
	NumQuestions int    `json:"num_questions" binding:"min=0"`
}

// QuizGenerateResponse is the generated quiz. It is never stored: the
// client holds the questions and echoes the answer key at submit time.
type QuizGenerateResponse struct {
	QuizID           string     `json:"quiz_id"`
	Subject          string     `json:"subject"`
	Module           string     `json:"module"`
	ExamFormat       string     `json:"exam_format"`
	Difficulty       string     `json:"difficulty"`
	TimeLimitMinutes int        `json:"time_limit_minutes"`
	Questions        []Question `json:"questions"`
}
