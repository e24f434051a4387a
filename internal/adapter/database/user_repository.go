package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/diillson/warehouse-api/internal/domain/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserRepository implementa repository.UserRepository
type UserRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewUserRepository cria um novo repositório de usuários
func NewUserRepository(db *gorm.DB, logger *zap.Logger) repository.UserRepository {
	tracer := otel.GetTracerProvider().Tracer("warehouse-api.repository.user")

	return &UserRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// GetByUsername busca um usuário pelo nome já normalizado
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.UserEntity, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.GetByUsername",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "users"),
		),
	)
	defer span.End()

	var user model.UserEntity
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		r.logger.Error("falha ao buscar usuário", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	return &user, nil
}

// GetByID busca um usuário pelo identificador
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.UserEntity, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.GetByID",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "users"),
		),
	)
	defer span.End()

	var user model.UserEntity
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		r.logger.Error("falha ao buscar usuário por id", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	return &user, nil
}

// Create insere um novo usuário. O índice único em username é o
// guarda-costas contra registros simultâneos com o mesmo nome.
func (r *UserRepository) Create(ctx context.Context, user *model.UserEntity) error {
	ctx, span := r.tracer.Start(ctx, "UserRepository.Create",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "users"),
		),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		r.logger.Error("falha ao criar usuário", zap.String("username", user.Username), zap.Error(err))
		return fmt.Errorf("falha ao criar usuário: %w", err)
	}

	return nil
}
