package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/handler"
	"catboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockCatService
type MockCatService struct {
	GetPostsFunc     func(ctx context.Context, limit int) (*dto.PostsResponse, error)
	GetCatDetailFunc func(ctx context.Context, id string) (*dto.CatDetailResponse, error)
	GetCarouselFunc  func(ctx context.Context) (*dto.CarouselResponse, error)
	InvalidateFunc   func(ctx context.Context) error
}

func (m *MockCatService) GetPosts(ctx context.Context, limit int) (*dto.PostsResponse, error) {
	if m.GetPostsFunc != nil {
		return m.GetPostsFunc(ctx, limit)
	}
	panic("MockCatService.GetPostsFunc not implemented")
}
func (m *MockCatService) GetCatDetail(ctx context.Context, id string) (*dto.CatDetailResponse, error) {
	if m.GetCatDetailFunc != nil {
		return m.GetCatDetailFunc(ctx, id)
	}
	panic("MockCatService.GetCatDetailFunc not implemented")
}
func (m *MockCatService) GetCarousel(ctx context.Context) (*dto.CarouselResponse, error) {
	if m.GetCarouselFunc != nil {
		return m.GetCarouselFunc(ctx)
	}
	panic("MockCatService.GetCarouselFunc not implemented")
}
func (m *MockCatService) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	panic("MockCatService.InvalidateFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	StartSessionFunc  func(ctx context.Context) (*dto.QuizSessionResponse, error)
	SubmitAnswersFunc func(ctx context.Context, sessionID string, answers []string) (*dto.QuizResultResponse, error)
}

func (m *MockQuizService) StartSession(ctx context.Context) (*dto.QuizSessionResponse, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx)
	}
	panic("MockQuizService.StartSessionFunc not implemented")
}
func (m *MockQuizService) SubmitAnswers(ctx context.Context, sessionID string, answers []string) (*dto.QuizResultResponse, error) {
	if m.SubmitAnswersFunc != nil {
		return m.SubmitAnswersFunc(ctx, sessionID, answers)
	}
	panic("MockQuizService.SubmitAnswersFunc not implemented")
}

// MockThemeService
type MockThemeService struct {
	CurrentFunc              func(ctx context.Context) (*dto.ThemeResponse, error)
	ChangeFunc               func(ctx context.Context, theme string) (*dto.ThemeResponse, error)
	ToggleFunc               func(ctx context.Context) (*dto.ThemeResponse, error)
	SyncSystemPreferenceFunc func(ctx context.Context, prefersDark bool) (*dto.ThemeResponse, error)
}

func (m *MockThemeService) Current(ctx context.Context) (*dto.ThemeResponse, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx)
	}
	panic("MockThemeService.CurrentFunc not implemented")
}
func (m *MockThemeService) Change(ctx context.Context, theme string) (*dto.ThemeResponse, error) {
	if m.ChangeFunc != nil {
		return m.ChangeFunc(ctx, theme)
	}
	panic("MockThemeService.ChangeFunc not implemented")
}
func (m *MockThemeService) Toggle(ctx context.Context) (*dto.ThemeResponse, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx)
	}
	panic("MockThemeService.ToggleFunc not implemented")
}
func (m *MockThemeService) SyncSystemPreference(ctx context.Context, prefersDark bool) (*dto.ThemeResponse, error) {
	if m.SyncSystemPreferenceFunc != nil {
		return m.SyncSystemPreferenceFunc(ctx, prefersDark)
	}
	panic("MockThemeService.SyncSystemPreferenceFunc not implemented")
}
func (m *MockThemeService) Subscribe() <-chan domain.ThemeChange {
	return make(chan domain.ThemeChange)
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func TestCatHandler_GetPosts(t *testing.T) {
	mockSvc := &MockCatService{
		GetPostsFunc: func(ctx context.Context, limit int) (*dto.PostsResponse, error) {
			assert.Equal(t, 5, limit)
			return &dto.PostsResponse{
				Posts: []dto.PostResponse{{ID: "abys", Name: "Abyssinian"}},
				Count: 1,
			}, nil
		},
	}

	app := newApp()
	app.Get("/api/cats", handler.NewCatHandler(mockSvc).GetPosts)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cats?limit=5", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.PostsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "Abyssinian", body.Posts[0].Name)
}

func TestCatHandler_GetCatDetail_NotFound(t *testing.T) {
	mockSvc := &MockCatService{
		GetCatDetailFunc: func(ctx context.Context, id string) (*dto.CatDetailResponse, error) {
			return nil, domain.NewNotFoundError("cat not found: " + id)
		},
	}

	app := newApp()
	app.Get("/api/cats/:id", handler.NewCatHandler(mockSvc).GetCatDetail)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cats/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuizHandler_SubmitAnswers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockQuizService{
			SubmitAnswersFunc: func(ctx context.Context, sessionID string, answers []string) (*dto.QuizResultResponse, error) {
				assert.Equal(t, "01JX", sessionID)
				assert.Equal(t, []string{"Tiger", "Five"}, answers)
				return &dto.QuizResultResponse{SessionID: sessionID, Score: 2, Total: 2}, nil
			},
		}

		app := newApp()
		app.Post("/api/quiz/:id/answers", handler.NewQuizHandler(mockSvc).SubmitAnswers)

		payload, _ := json.Marshal(dto.SubmitAnswersRequest{Answers: []string{"Tiger", "Five"}})
		req := httptest.NewRequest(http.MethodPost, "/api/quiz/01JX/answers", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.QuizResultResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body.Score)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app := newApp()
		app.Post("/api/quiz/:id/answers", handler.NewQuizHandler(&MockQuizService{}).SubmitAnswers)

		req := httptest.NewRequest(http.MethodPost, "/api/quiz/01JX/answers", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("SessionClosed", func(t *testing.T) {
		mockSvc := &MockQuizService{
			SubmitAnswersFunc: func(ctx context.Context, sessionID string, answers []string) (*dto.QuizResultResponse, error) {
				return nil, domain.NewSessionClosedError(sessionID)
			},
		}

		app := newApp()
		app.Post("/api/quiz/:id/answers", handler.NewQuizHandler(mockSvc).SubmitAnswers)

		payload, _ := json.Marshal(dto.SubmitAnswersRequest{Answers: []string{"Tiger"}})
		req := httptest.NewRequest(http.MethodPost, "/api/quiz/01JX/answers", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestThemeHandler_Change(t *testing.T) {
	mockSvc := &MockThemeService{
		ChangeFunc: func(ctx context.Context, theme string) (*dto.ThemeResponse, error) {
			if theme != domain.ThemeLightMode {
				return nil, domain.NewInvalidInputError("unknown theme: " + theme)
			}
			return &dto.ThemeResponse{Theme: theme, Persisted: true}, nil
		},
	}

	app := newApp()
	app.Put("/api/theme", handler.NewThemeHandler(mockSvc).Change)

	t.Run("KnownTheme", func(t *testing.T) {
		payload, _ := json.Marshal(dto.ChangeThemeRequest{Theme: domain.ThemeLightMode})
		req := httptest.NewRequest(http.MethodPut, "/api/theme", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.ThemeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Persisted)
	})

	t.Run("UnknownTheme", func(t *testing.T) {
		payload, _ := json.Marshal(dto.ChangeThemeRequest{Theme: "hot-pink"})
		req := httptest.NewRequest(http.MethodPut, "/api/theme", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
