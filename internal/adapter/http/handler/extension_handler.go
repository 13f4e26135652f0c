package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cienciascontic/textlabx/internal/adapter/extension"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

// InvokeOutput is the result of one block invocation
type InvokeOutput struct {
	Opcode string `json:"opcode"`
	Result string `json:"result"`
}

// ExtensionHandler exposes the block extension over HTTP
type ExtensionHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewExtensionHandler creates a new extension handler
func NewExtensionHandler(sessionUC usecase.SessionUsecase) *ExtensionHandler {
	return &ExtensionHandler{sessionUC: sessionUC}
}

// GetInfo handles GET /api/v1/extension
func (h *ExtensionHandler) GetInfo(c *gin.Context) {
	respondSuccess(c, http.StatusOK, extension.GetInfo())
}

// InvokeBlock handles POST /api/v1/sessions/:id/blocks/:opcode.
// The body is the block's argument map, e.g. {"TEXTO": "hola"}.
func (h *ExtensionHandler) InvokeBlock(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "session id")
		return
	}

	args := map[string]any{}
	if err := bindOptionalJSON(c, &args); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	opcode := c.Param("opcode")
	ext := extension.New(h.sessionUC.Session(id.String()))
	result, err := ext.Invoke(c.Request.Context(), opcode, args)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, InvokeOutput{Opcode: opcode, Result: result})
}
