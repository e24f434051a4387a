package http

import (
	"net/http"

	"github.com/diillson/warehouse-api/internal/app/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PurchaseHandler atende as rotas de compras
type PurchaseHandler struct {
	catalogService *catalog.Service
	logger         *zap.Logger
}

// NewPurchaseHandler cria um novo handler de compras
func NewPurchaseHandler(catalogService *catalog.Service, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

type CreatePurchaseRequest struct {
	ClientID  uint `json:"client_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreatePurchase registra a compra de um produto por um cliente
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	purchase, err := h.catalogService.CreatePurchase(c.Request.Context(), req.ClientID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

// ListPurchases retorna as compras de um cliente
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	clientID, err := parseIDParam(c, "client_id")
	if err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	purchases, err := h.catalogService.ListPurchases(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, purchases)
}
