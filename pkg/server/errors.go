package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/frcl/mensad/pkg/errors"
	"github.com/frcl/mensad/pkg/serializers"
)

// ErrorResponse is the JSON error body served to clients.
type ErrorResponse struct {
	Code      errors.ErrorCode       `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable"`
}

// WriteError writes a structured JSON error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]interface{}) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializers.RespondJSON(w, statusCode, errResp)
}
