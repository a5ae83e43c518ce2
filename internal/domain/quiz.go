package domain

import (
	"fmt"
	"time"
)

// QuizQuestion is one multiple-choice trivia question as served by the
// trivia API: the question text, its single correct answer, and the set
// of incorrect answers. Fetched fresh per quiz load and discarded with
// the session.
type QuizQuestion struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// SessionQuestion is a question inside a running session, with its
// answer options already shuffled. The shuffle order is fixed for the
// session's lifetime but not reproducible across sessions.
type SessionQuestion struct {
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuizSession holds one quiz attempt. Once evaluated it is read-only:
// there is no retry path without starting a new session.
type QuizSession struct {
	ID        string            `json:"id"`
	Questions []SessionQuestion `json:"questions"`
	Evaluated bool              `json:"evaluated"`
	CreatedAt time.Time         `json:"created_at"`
}

// AnswerMark is the graded state of one answer option. Correct marks the
// known correct answer regardless of what was selected; SelectedWrong
// marks a wrong selection.
type AnswerMark struct {
	Value         string `json:"value"`
	Correct       bool   `json:"correct"`
	SelectedWrong bool   `json:"selected_wrong"`
}

// QuestionResult is the graded state of one question after evaluation.
type QuestionResult struct {
	Question string       `json:"question"`
	Selected string       `json:"selected"`
	Correct  bool         `json:"correct"`
	Answers  []AnswerMark `json:"answers"`
}

// QuizResult is the outcome of evaluating a full session.
type QuizResult struct {
	SessionID string           `json:"session_id"`
	Score     int              `json:"score"`
	Total     int              `json:"total"`
	Message   string           `json:"message"`
	Questions []QuestionResult `json:"questions"`
}

// Evaluate grades the session against the selected answers, one per
// question in render order. An empty selection counts as unanswered and
// rejects the whole submission, mirroring the disabled submit control.
// On success the session is marked evaluated and further calls fail.
func (s *QuizSession) Evaluate(selected []string) (*QuizResult, error) {
	if s.Evaluated {
		return nil, NewSessionClosedError(s.ID)
	}

	if !s.AllAnswered(selected) {
		return nil, NewIncompleteAnswersError(countAnswered(selected), len(s.Questions))
	}

	result := &QuizResult{
		SessionID: s.ID,
		Total:     len(s.Questions),
		Questions: make([]QuestionResult, 0, len(s.Questions)),
	}

	for i, q := range s.Questions {
		answer := selected[i]
		correct := answer == q.CorrectAnswer
		if correct {
			result.Score++
		}

		marks := make([]AnswerMark, 0, len(q.Answers))
		for _, option := range q.Answers {
			marks = append(marks, AnswerMark{
				Value:         option,
				Correct:       option == q.CorrectAnswer,
				SelectedWrong: option == answer && !correct,
			})
		}

		result.Questions = append(result.Questions, QuestionResult{
			Question: q.Question,
			Selected: answer,
			Correct:  correct,
			Answers:  marks,
		})
	}

	result.Message = fmt.Sprintf("You got %d of %d questions right!", result.Score, result.Total)
	s.Evaluated = true
	return result, nil
}

// AllAnswered reports whether every question has a non-empty selection.
// It gates Evaluate and backs the submit-enabled flag the client
// recomputes on each change.
func (s *QuizSession) AllAnswered(selected []string) bool {
	if len(selected) != len(s.Questions) {
		return false
	}
	for _, answer := range selected {
		if answer == "" {
			return false
		}
	}
	return true
}

func countAnswered(selected []string) int {
	n := 0
	for _, answer := range selected {
		if answer != "" {
			n++
		}
	}
	return n
}
