package http

import (
	"errors"
	"net/http"

	"github.com/diillson/warehouse-api/internal/app/auth"
	"github.com/diillson/warehouse-api/internal/app/catalog"
	apierrors "github.com/diillson/warehouse-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// toAPIError traduz erros de serviço para a taxonomia HTTP. Tudo que não
// for reconhecido vira erro interno; nada escapa como falha não estruturada.
func toAPIError(err error) *apierrors.APIError {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return apierrors.Unauthorized("", err)
	case errors.Is(err, auth.ErrUserExists):
		return apierrors.BadRequest("user already exists", err)
	case errors.Is(err, auth.ErrUserNotFound):
		return apierrors.NotFound("user", err)
	case errors.Is(err, catalog.ErrProductNotFound):
		return apierrors.NotFound("product", err)
	case errors.Is(err, catalog.ErrClientNotFound):
		return apierrors.NotFound("client", err)
	case errors.Is(err, catalog.ErrPurchaseExists):
		return apierrors.Conflict("purchase already exists", err)
	case errors.Is(err, catalog.ErrInvalidPrice), errors.Is(err, catalog.ErrInvalidQuantity):
		return apierrors.BadRequest(err.Error(), err)
	default:
		return apierrors.InternalServer("", err)
	}
}

// respondError converte qualquer erro em uma resposta JSON com campo status
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	apiErr := toAPIError(err)

	if apiErr.Code >= http.StatusInternalServerError {
		logger.Error("erro interno ao atender requisição",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}

	body := gin.H{"status": "error"}

	// Falhas de autenticação não carregam detalhe algum: usuário
	// inexistente e senha errada produzem exatamente o mesmo corpo
	if apiErr.Code != http.StatusUnauthorized && apiErr.Message != "" {
		body["message"] = apiErr.Message
	}

	c.JSON(apiErr.Code, body)
}

// respondValidationError trata falhas de binding/validação do gin
func respondValidationError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Debug("JSON inválido", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "invalid request body",
	})
}
