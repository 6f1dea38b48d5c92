package handler

import "masjid/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jamaah@masjid.id"`
	Password string `json:"password" binding:"required" example:"jamaah123"`
}

// ContentSourceRequest sets the spreadsheet endpoint.
type ContentSourceRequest struct {
	URL string `json:"url" binding:"required" example:"https://script.google.com/macros/s/AKfycb.../exec"`
}

// --- Response Types ---

// MeResponse is the current user and the view the client should switch into.
type MeResponse struct {
	User *domain.User `json:"user"`
	View domain.View  `json:"view" example:"ustadz"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"settings store not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"Pertanyaan berhasil dikirim"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
