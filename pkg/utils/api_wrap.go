package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps sentinel service errors onto HTTP statuses.
// Scan rejections come back as 409 so the scanner UI can show the timed
// "already at ..." message instead of a generic failure.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrParticipantNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrInvalidQrCode):
		RespondError(c, http.StatusNotFound, "Invalid QR code")

	case errors.Is(err, ErrAlreadyAtActivity),
		errors.Is(err, ErrAlreadyAtCamp),
		errors.Is(err, ErrScanConflict),
		errors.Is(err, ErrDuplicateParticipant),
		errors.Is(err, ErrDuplicateActivity),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrMissingActivity),
		errors.Is(err, ErrInvalidScanType),
		errors.Is(err, ErrInvalidCsv):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
