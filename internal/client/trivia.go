package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"catboard/internal/domain"
)

const triviaTimeout = 15 * time.Second

// TriviaClient talks to the Open Trivia Database.
type TriviaClient struct {
	baseURL string
	client  *http.Client
}

func NewTriviaClient(baseURL string) *TriviaClient {
	return &TriviaClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: triviaTimeout},
	}
}

type triviaResponse struct {
	ResponseCode int              `json:"response_code"`
	Results      []triviaQuestion `json:"results"`
}

type triviaQuestion struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// GetQuizQuestions performs one request for amount multiple-choice
// questions in the given category and returns the results list. There
// is no caching and no retry; any HTTP or decode failure propagates.
func (c *TriviaClient) GetQuizQuestions(ctx context.Context, amount, category int) ([]domain.QuizQuestion, error) {
	query := url.Values{}
	query.Set("amount", strconv.Itoa(amount))
	query.Set("category", strconv.Itoa(category))
	query.Set("type", "multiple")

	endpoint := c.baseURL + "/api.php?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewUpstreamError("opentdb", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("opentdb", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError("opentdb",
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint))
	}

	var payload triviaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError("opentdb", fmt.Errorf("decoding results: %w", err))
	}

	questions := make([]domain.QuizQuestion, 0, len(payload.Results))
	for _, q := range payload.Results {
		questions = append(questions, domain.QuizQuestion{
			Question:         q.Question,
			CorrectAnswer:    q.CorrectAnswer,
			IncorrectAnswers: q.IncorrectAnswers,
		})
	}
	return questions, nil
}
