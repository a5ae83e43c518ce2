package dto

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service and cache health.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
