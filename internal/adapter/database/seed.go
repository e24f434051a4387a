package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/diillson/warehouse-api/internal/domain/repository"
	"github.com/diillson/warehouse-api/pkg/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedInitialAdmin cria o usuário administrador inicial caso ele ainda não
// exista. A credencial vem da configuração (WH_AUTH_INITIALADMIN_USERNAME /
// WH_AUTH_INITIALADMIN_PASSWORD); sem ela, nada é semeado e não existe
// senha padrão embutida. A operação é idempotente.
func SeedInitialAdmin(ctx context.Context, userRepo repository.UserRepository, admin config.InitialAdminConfig, logger *zap.Logger) error {
	if admin.Username == "" || admin.Password == "" {
		logger.Warn("Credencial inicial de administrador não configurada, semeadura ignorada")
		return nil
	}

	username := strings.ToLower(admin.Username)

	_, err := userRepo.GetByUsername(ctx, username)
	if err == nil {
		logger.Info("Usuário administrador já existe", zap.String("username", username))
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("falha ao verificar administrador existente: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("falha ao gerar hash da senha do administrador: %w", err)
	}

	role := admin.Role
	if role == "" {
		role = "Admin"
	}

	user := &model.UserEntity{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		// Outra instância pode ter semeado primeiro; o índice único decide
		if errors.Is(err, repository.ErrDuplicate) {
			logger.Info("Usuário administrador criado por outra instância", zap.String("username", username))
			return nil
		}
		return fmt.Errorf("falha ao criar administrador inicial: %w", err)
	}

	logger.Info("Usuário administrador inicial criado",
		zap.String("username", username),
		zap.String("role", role))

	return nil
}
