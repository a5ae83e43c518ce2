package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"catboard/internal/domain"
	"catboard/internal/logger"

	"go.uber.org/zap"
)

// UsersClient submits sign-up records to the user registration API.
type UsersClient struct {
	baseURL string
	client  *http.Client
}

func NewUsersClient(baseURL string, timeout time.Duration) *UsersClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &UsersClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SubmitUser POSTs the normalized user record as JSON. Any non-2xx
// status counts as a failure.
func (c *UsersClient) SubmitUser(ctx context.Context, user *domain.User) error {
	body, err := json.Marshal(user)
	if err != nil {
		return domain.NewInternalError("failed to encode user record", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/add", bytes.NewReader(body))
	if err != nil {
		return domain.NewUpstreamError("dummyjson", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.NewUpstreamError("dummyjson", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused; the body itself is
		// not surfaced to the user.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Get().Warn("user submission rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return domain.NewUpstreamError("dummyjson",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return nil
}
