package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"catboard/internal/cache"
	"catboard/internal/config"
	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/logger"
	"catboard/internal/util"

	"go.uber.org/zap"
)

// QuizService runs trivia quiz attempts: it starts sessions with
// shuffled answer options and grades submissions.
type QuizService interface {
	// StartSession fetches a fresh question set and opens a session.
	// The response never reveals the correct answers.
	StartSession(ctx context.Context) (*dto.QuizSessionResponse, error)

	// SubmitAnswers grades a session. Every question needs exactly
	// one selected answer; after a successful evaluation the session
	// is read-only.
	SubmitAnswers(ctx context.Context, sessionID string, answers []string) (*dto.QuizResultResponse, error)
}

type quizServiceImpl struct {
	trivia domain.TriviaAPI
	cache  domain.Cache
	cfg    config.TriviaConfig
}

// NewQuizService creates a QuizService backed by the given trivia API
// and session store.
func NewQuizService(trivia domain.TriviaAPI, cacheAdapter domain.Cache, cfg config.TriviaConfig) QuizService {
	return &quizServiceImpl{
		trivia: trivia,
		cache:  cacheAdapter,
		cfg:    cfg,
	}
}

func sessionKey(sessionID string) string {
	return cache.GenerateCacheKey("quiz", "session", sessionID)
}

func (s *quizServiceImpl) StartSession(ctx context.Context) (*dto.QuizSessionResponse, error) {
	questions, err := s.trivia.GetQuizQuestions(ctx, s.cfg.Amount, s.cfg.Category)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.NewUpstreamError("opentdb", errors.New("empty question set"))
	}

	session := &domain.QuizSession{
		ID:        util.NewULID(),
		Questions: make([]domain.SessionQuestion, 0, len(questions)),
		CreatedAt: time.Now(),
	}

	for _, q := range questions {
		options := append([]string{q.CorrectAnswer}, q.IncorrectAnswers...)
		session.Questions = append(session.Questions, domain.SessionQuestion{
			Question:      q.Question,
			Answers:       util.Shuffle(options),
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("quiz session started",
		zap.String("session_id", session.ID),
		zap.Int("questions", len(session.Questions)),
	)

	return toSessionResponse(session), nil
}

func (s *quizServiceImpl) SubmitAnswers(ctx context.Context, sessionID string, answers []string) (*dto.QuizResultResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := session.Evaluate(answers)
	if err != nil {
		return nil, err
	}

	// Persist the evaluated flag so a second submission is rejected.
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("quiz session evaluated",
		zap.String("session_id", sessionID),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
	)

	return &dto.QuizResultResponse{
		SessionID: result.SessionID,
		Score:     result.Score,
		Total:     result.Total,
		Message:   result.Message,
		Questions: result.Questions,
	}, nil
}

func (s *quizServiceImpl) saveSession(ctx context.Context, session *domain.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to encode quiz session", err)
	}
	if err := s.cache.Set(ctx, sessionKey(session.ID), string(data), s.cfg.SessionTTL); err != nil {
		return domain.NewInternalError("failed to store quiz session", err)
	}
	return nil
}

func (s *quizServiceImpl) loadSession(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	data, err := s.cache.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, domain.NewInternalError("failed to load quiz session", err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, domain.NewInternalError("failed to decode quiz session", err)
	}
	return &session, nil
}

func toSessionResponse(session *domain.QuizSession) *dto.QuizSessionResponse {
	questions := make([]dto.SessionQuestionResponse, 0, len(session.Questions))
	for _, q := range session.Questions {
		questions = append(questions, dto.SessionQuestionResponse{
			Question: q.Question,
			Answers:  q.Answers,
		})
	}
	return &dto.QuizSessionResponse{
		SessionID: session.ID,
		Questions: questions,
	}
}
