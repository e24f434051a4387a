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

// ClientRepository implementa repository.ClientRepository
type ClientRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewClientRepository cria um novo repositório de clientes
func NewClientRepository(db *gorm.DB, logger *zap.Logger) repository.ClientRepository {
	tracer := otel.GetTracerProvider().Tracer("warehouse-api.repository.client")

	return &ClientRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// GetByID busca um cliente pela chave primária
func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*model.ClientEntity, error) {
	ctx, span := r.tracer.Start(ctx, "ClientRepository.GetByID",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "clients"),
		),
	)
	defer span.End()

	var client model.ClientEntity
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		r.logger.Error("falha ao buscar cliente", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("falha ao buscar cliente: %w", err)
	}

	return &client, nil
}

// GetAll retorna a lista completa de clientes
func (r *ClientRepository) GetAll(ctx context.Context) ([]*model.ClientEntity, error) {
	ctx, span := r.tracer.Start(ctx, "ClientRepository.GetAll",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "clients"),
		),
	)
	defer span.End()

	var clients []*model.ClientEntity
	if err := r.db.WithContext(ctx).Find(&clients).Error; err != nil {
		r.logger.Error("falha ao listar clientes", zap.Error(err))
		return nil, fmt.Errorf("falha ao listar clientes: %w", err)
	}

	return clients, nil
}

// Create insere um novo cliente e preenche o ID gerado
func (r *ClientRepository) Create(ctx context.Context, client *model.ClientEntity) error {
	ctx, span := r.tracer.Start(ctx, "ClientRepository.Create",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "clients"),
		),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		r.logger.Error("falha ao criar cliente", zap.String("name", client.Name), zap.Error(err))
		return fmt.Errorf("falha ao criar cliente: %w", err)
	}

	return nil
}
