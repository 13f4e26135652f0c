package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cienciascontic/textlabx/internal/usecase"
)

// ModelHandler handles model training requests
type ModelHandler struct {
	modelUC usecase.ModelUsecase
	logger  *zap.Logger
}

// NewModelHandler creates a new model handler
func NewModelHandler(modelUC usecase.ModelUsecase, logger *zap.Logger) *ModelHandler {
	return &ModelHandler{modelUC: modelUC, logger: logger}
}

// TrainModel handles POST /api/v1/models
func (h *ModelHandler) TrainModel(c *gin.Context) {
	var input usecase.TrainModelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.modelUC.Train(c.Request.Context(), &input)
	if err != nil {
		h.logger.Warn("Training failed", zap.Int("examples", len(input.Examples)), zap.Error(err))
		HandleUsecaseError(c, err)
		return
	}

	h.logger.Info("Model trained",
		zap.String("model_id", output.ModelID),
		zap.Int("examples", len(input.Examples)),
	)
	respondSuccess(c, http.StatusCreated, output)
}
