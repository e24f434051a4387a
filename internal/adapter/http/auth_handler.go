package http

import (
	"net/http"

	"github.com/diillson/warehouse-api/internal/app/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler atende as rotas de autenticação e usuários
type AuthHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuthHandler cria um novo handler de autenticação
func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type AuthorizeRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Authorize autentica o usuário e devolve o papel junto com o token de sessão
func (h *AuthHandler) Authorize(c *gin.Context) {
	var req AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	user, token, err := h.authService.Authorize(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"role":   user.Role,
		"token":  token,
	})
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Register cadastra um novo usuário
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	h.logger.Info("Tentativa de registro de usuário", zap.String("username", req.Username))

	if _, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Role); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "ok",
		"message": "registered",
	})
}

type UserLookupRequest struct {
	Username string `json:"username" binding:"required"`
}

// GetUser busca um usuário pelo nome informado no corpo da requisição
func (h *AuthHandler) GetUser(c *gin.Context) {
	var req UserLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, h.logger, err)
		return
	}

	user, err := h.authService.Lookup(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
