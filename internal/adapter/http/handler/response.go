package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope of every gateway response.
// Exactly one of Data and Error is set.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo is a machine-readable code plus a message for humans
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MetaInfo ties a response to its request
type MetaInfo struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// newMeta reuses the id set by the RequestID middleware, if any
func newMeta(c *gin.Context) *MetaInfo {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &MetaInfo{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	}
}

func respond(c *gin.Context, status int, resp Response) {
	resp.Meta = newMeta(c)
	c.JSON(status, resp)
}

func respondSuccess(c *gin.Context, status int, data any) {
	respond(c, status, Response{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	respond(c, status, Response{Error: &ErrorInfo{Code: code, Message: message}})
}
