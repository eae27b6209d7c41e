package handler

import (
	"errors"
	"fmt"
	"net/http"

	"keychain-backend/internal/model"
	"keychain-backend/internal/service"
	"keychain-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type KeychainHandler struct {
	service *service.KeychainService
}

func NewKeychainHandler(s *service.KeychainService) *KeychainHandler {
	return &KeychainHandler{service: s}
}

// GenerateSTL handles POST /generate-stl: bind, default, validate, run the
// pipeline and stream the mesh as an attachment.
func (h *KeychainHandler) GenerateSTL(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
		return
	}

	params := req.WithDefaults()
	if err := params.Validate(); err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.service.Generate(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, model.MeshMIMEType, result.Data)
}

// fail maps a pipeline failure onto the response contract. Client faults and
// engine diagnostics carry their message through; deployment faults stay
// opaque to the caller.
func (h *KeychainHandler) fail(c *gin.Context, err error) {
	var perr *model.PipelineError
	if !errors.As(err, &perr) {
		logger.Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "internal server error"})
		return
	}

	switch {
	case perr.Kind.ClientFault():
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   perr.Message,
			Details: perr.Detail,
		})
	case perr.Kind == model.KindEngineExecutionFailed || perr.Kind == model.KindArtifactNotProduced:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   perr.Message,
			Details: perr.Detail,
		})
	default:
		// MISSING_FONT_ASSET and UNHANDLED_FAULT: log the full error, hide
		// the internals.
		logger.Errorf("server fault: %v", perr)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "internal server error"})
	}
}
