package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"idvex/internal/domain"
	"idvex/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNoInput):
		return http.StatusBadRequest, "NO_INPUT", "no data provided"
	case errors.Is(err, domain.ErrInvalidJSON):
		return http.StatusBadRequest, "INVALID_JSON", "invalid JSON data provided"
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "payload exceeds maximum allowed size"
	case errors.Is(err, domain.ErrTokenRequired):
		return http.StatusUnauthorized, "TOKEN_REQUIRED", "access token required"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "TOKEN_INVALID", "token could not be parsed or was rejected"
	case errors.Is(err, domain.ErrRequestIDRequired):
		return http.StatusBadRequest, "REQUEST_ID_REQUIRED", "request id is required"
	case errors.Is(err, domain.ErrEndpointUnknown):
		return http.StatusBadRequest, "ENDPOINT_UNKNOWN", "no endpoint matches the token's region and environment"
	case errors.Is(err, domain.ErrUpstreamFailed):
		return http.StatusBadGateway, "UPSTREAM_FAILED", "upstream request failed"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported export format; allowed: csv, xlsx"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("handler.HandleError: internal error request_id=%s: %v", middleware.GetRequestID(c), err)
	}
	RespondError(c, status, code, msg)
}
