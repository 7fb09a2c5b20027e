package models

import "time"

// QuizSubmitRequest carries everything needed to score an attempt. The
// correct-answer key comes from the client because generated quizzes
// are not retained server-side; the server scores against whatever key
// is echoed back.
type QuizSubmitRequest struct {
	QuizID              string    `json:"quiz_id" binding:"required"`
	UserID              string    `json:"user_id" binding:"required"`
	Subject             string    `json:"subject" binding:"required"`
	Module              string    `json:"module" binding:"required"`
	ExamFormat          string    `json:"exam_format" binding:"required"`
	Difficulty          string    `json:"difficulty" binding:"required"`
	TotalQuestions      int       `json:"total_questions" binding:"min=0"`
	Answers             AnswerMap `json:"answers"`
	BookmarkedQuestions []int     `json:"bookmarked_questions"`
	TimeTakenSeconds    int       `json:"time_taken_seconds"`
	CorrectAnswers      AnswerMap `json:"correct_answers" binding:"required"`
}

// DetailedAnswer records the outcome for one question number. Question
// text and options are placeholders: the server never saw the generated
// quiz, only the key.
type DetailedAnswer struct {
	QuestionNumber int      `bson:"question_number" json:"question_number"`
	Question       string   `bson:"question" json:"question"`
	Options        []string `bson:"options" json:"options"`
	UserAnswer     *string  `bson:"user_answer" json:"user_answer"`
	CorrectAnswer  string   `bson:"correct_answer" json:"correct_answer"`
	IsCorrect      bool     `bson:"is_correct" json:"is_correct"`
	WasBookmarked  bool     `bson:"was_bookmarked" json:"was_bookmarked"`
}

// QuizAttempt is the persisted record of one submitted quiz. Written
// once, never updated.
type QuizAttempt struct {
	AttemptID          string           `bson:"attempt_id" json:"attempt_id"`
	QuizID             string           `bson:"quiz_id" json:"quiz_id"`
	UserID             string           `bson:"user_id" json:"user_id"`
	Subject            string           `bson:"subject" json:"subject"`
	Module             string           `bson:"module" json:"module"`
	ExamFormat         string           `bson:"exam_format" json:"exam_format"`
	Difficulty         string           `bson:"difficulty" json:"difficulty"`
	TotalQuestions     int              `bson:"total_questions" json:"total_questions"`
	AttemptedQuestions int              `bson:"attempted_questions" json:"attempted_questions"`
	CorrectAnswers     int              `bson:"correct_answers" json:"correct_answers"`
	ScorePercentage    float64          `bson:"score_percentage" json:"score_percentage"`
	TimeTakenSeconds   int              `bson:"time_taken_seconds" json:"time_taken_seconds"`
	Timestamp          time.Time        `bson:"timestamp" json:"timestamp"`
	DetailedAnswers    []DetailedAnswer `bson:"detailed_answers" json:"detailed_answers"`
}
