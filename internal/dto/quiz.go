package dto

import "catboard/internal/domain"

// SessionQuestionResponse is one question as served to the client: the
// answer options are shuffled and the correct answer is not revealed.
type SessionQuestionResponse struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// QuizSessionResponse is a freshly started quiz attempt.
type QuizSessionResponse struct {
	SessionID string                    `json:"session_id"`
	Questions []SessionQuestionResponse `json:"questions"`
}

// SubmitAnswersRequest carries one selected answer per question, in
// render order. An empty string means the question is unanswered.
type SubmitAnswersRequest struct {
	Answers []string `json:"answers"`
}

// QuizResultResponse is the graded outcome of a submission.
type QuizResultResponse struct {
	SessionID string                  `json:"session_id"`
	Score     int                     `json:"score"`
	Total     int                     `json:"total"`
	Message   string                  `json:"message"`
	Questions []domain.QuestionResult `json:"questions"`
}
