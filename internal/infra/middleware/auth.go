package middleware

import (
	"net/http"
	"strings"

	"github.com/diillson/warehouse-api/internal/app/auth"
	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware gerencia middlewares de autenticação
type AuthMiddleware struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuthMiddleware cria uma nova instância do middleware de autenticação
func NewAuthMiddleware(authService *auth.Service, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Authenticate verifica se a requisição carrega um token de sessão válido
func (m *AuthMiddleware) Authenticate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error"})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error"})
		return
	}

	user, err := m.authService.ValidateToken(c.Request.Context(), tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error"})
		return
	}

	// Armazena o usuário no contexto para uso posterior. Não chama
	// c.Next() aqui: AuthenticateAdmin reutiliza este método e o papel
	// precisa ser verificado antes do handler executar
	c.Set("user", user)
}

// AuthenticateAdmin verifica se o usuário autenticado é um administrador
func (m *AuthMiddleware) AuthenticateAdmin(c *gin.Context) {
	m.Authenticate(c)

	if c.IsAborted() {
		return
	}

	userValue, exists := c.Get("user")
	if !exists {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	user, ok := userValue.(*model.User)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	if !m.authService.IsAdmin(user) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "admin permission required",
		})
	}
}
