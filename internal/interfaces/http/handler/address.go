package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain/address"
)

// AddressHandler handles postal-code lookup endpoints
type AddressHandler struct {
	BaseHandler
	provider address.Provider
	logger   *zap.Logger
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(provider address.Provider, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		provider: provider,
		logger:   logger.Named("address_handler"),
	}
}

// Lookup handles GET /address/:cep
func (h *AddressHandler) Lookup(c *gin.Context) {
	record, err := h.provider.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if record == nil {
		h.NotFound(c, "Address not found")
		return
	}

	h.Success(c, record)
}

// RegisterRoutes registers address routes on the given group
func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/address/:cep", h.Lookup)
}
