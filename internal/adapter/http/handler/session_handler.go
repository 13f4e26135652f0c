package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

// SelectModelInput is the body of PUT /api/v1/sessions/:id/model.
// An empty model_id clears the selection.
type SelectModelInput struct {
	ModelID *string `json:"model_id" binding:"required"`
}

// ClassifyInput is the body of POST /api/v1/sessions/:id/classify
type ClassifyInput struct {
	Text string `json:"texto"`
}

// ClassifyOutput carries both the display string and the tagged outcome
type ClassifyOutput struct {
	Result      string             `json:"result"`
	Kind        entity.OutcomeKind `json:"kind"`
	ModelID     string             `json:"model_id,omitempty"`
	StatusCode  int                `json:"status_code,omitempty"`
	ServerError string             `json:"server_error,omitempty"`
}

// SessionHandler handles session HTTP requests
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUC usecase.SessionUsecase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC, logger: logger}
}

// OpenSession handles POST /api/v1/sessions
func (h *SessionHandler) OpenSession(c *gin.Context) {
	output, err := h.sessionUC.Open(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	h.logger.Info("Session opened", zap.String("session_id", output.SessionID))
	respondSuccess(c, http.StatusCreated, output)
}

// GetSession handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "session id")
		return
	}

	output, err := h.sessionUC.Get(c.Request.Context(), id.String())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// CloseSession handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) CloseSession(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "session id")
		return
	}

	if err := h.sessionUC.Close(c.Request.Context(), id.String()); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	h.logger.Info("Session closed", zap.String("session_id", id.String()))
	respondSuccess(c, http.StatusOK, usecase.SessionOutput{SessionID: id.String()})
}

// SelectModel handles PUT /api/v1/sessions/:id/model
func (h *SessionHandler) SelectModel(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "session id")
		return
	}

	var input SelectModelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.sessionUC.SelectModel(c.Request.Context(), id.String(), *input.ModelID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// Classify handles POST /api/v1/sessions/:id/classify.
// Classification failures are reported in the body with status 200.
func (h *SessionHandler) Classify(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "session id")
		return
	}

	var input ClassifyInput
	if err := bindOptionalJSON(c, &input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	outcome, err := h.sessionUC.Classify(c.Request.Context(), id.String(), input.Text)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	switch outcome.Kind {
	case entity.OutcomeTransport:
		h.logger.Warn("Classification service unreachable",
			zap.String("session_id", id.String()),
			zap.String("model_id", outcome.ModelID),
			zap.Error(outcome.Err),
		)
	case entity.OutcomeHTTPStatus:
		h.logger.Warn("Classification service rejected request",
			zap.String("session_id", id.String()),
			zap.String("model_id", outcome.ModelID),
			zap.Int("status", outcome.StatusCode),
		)
	}

	respondSuccess(c, http.StatusOK, ClassifyOutput{
		Result:      outcome.String(),
		Kind:        outcome.Kind,
		ModelID:     outcome.ModelID,
		StatusCode:  outcome.StatusCode,
		ServerError: outcome.ServerError,
	})
}
