package http

import (
	"net/http"

	"github.com/diillson/warehouse-api/internal/app/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler atende as rotas de clientes
type ClientHandler struct {
	catalogService *catalog.Service
	logger         *zap.Logger
}

// NewClientHandler cria um novo handler de clientes
func NewClientHandler(catalogService *catalog.Service, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contact_info"`
}

// CreateClient persiste um novo cliente
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	client, err := h.catalogService.CreateClient(c.Request.Context(), req.Name, req.ContactInfo)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClient busca um cliente pelo id da URL
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	client, err := h.catalogService.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// ListClients retorna a lista completa de clientes
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.catalogService.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}
