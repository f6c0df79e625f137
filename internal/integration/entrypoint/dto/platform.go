package dto

// TestConnectionRequest represents the request body for a platform
// connection test.
type TestConnectionRequest struct {
	Platform string `json:"platform" binding:"required"`
}

// TestConnectionResponse represents the result of a platform connection test.
type TestConnectionResponse struct {
	Platform  string `json:"platform"`
	Connected bool   `json:"connected"`
}
