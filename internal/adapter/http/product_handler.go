package http

import (
	"net/http"
	"strconv"

	"github.com/diillson/warehouse-api/internal/app/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler atende as rotas de produtos
type ProductHandler struct {
	catalogService *catalog.Service
	logger         *zap.Logger
}

// NewProductHandler cria um novo handler de produtos
func NewProductHandler(catalogService *catalog.Service, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// CreateProductRequest usa ponteiros em price e quantity para que zero
// legítimo passe pelo binding required
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0"`
}

// CreateProduct valida e persiste um novo produto
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req.Name, req.Description, *req.Price, *req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProduct busca um produto pelo id da URL
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts retorna a lista completa de produtos
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// parseIDParam lê um parâmetro numérico de rota
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
