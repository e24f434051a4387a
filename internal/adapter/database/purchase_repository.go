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
	"gorm.io/gorm/clause"
)

// PurchaseRepository implementa repository.PurchaseRepository
type PurchaseRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewPurchaseRepository cria um novo repositório de compras
func NewPurchaseRepository(db *gorm.DB, logger *zap.Logger) repository.PurchaseRepository {
	tracer := otel.GetTracerProvider().Tracer("warehouse-api.repository.purchase")

	return &PurchaseRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// GetByClient retorna todas as compras de um cliente
func (r *PurchaseRepository) GetByClient(ctx context.Context, clientID uint) ([]*model.PurchaseEntity, error) {
	ctx, span := r.tracer.Start(ctx, "PurchaseRepository.GetByClient",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "purchases"),
		),
	)
	defer span.End()

	var purchases []*model.PurchaseEntity
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&purchases).Error; err != nil {
		r.logger.Error("falha ao listar compras", zap.Uint("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("falha ao listar compras: %w", err)
	}

	return purchases, nil
}

// Create insere uma nova compra. A chave primária composta
// (client_id, product_id) rejeita um segundo registro do mesmo par.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *model.PurchaseEntity) error {
	ctx, span := r.tracer.Start(ctx, "PurchaseRepository.Create",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "purchases"),
		),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicate
		}
		r.logger.Error("falha ao criar compra",
			zap.Uint("client_id", purchase.ClientID),
			zap.Uint("product_id", purchase.ProductID),
			zap.Error(err))
		return fmt.Errorf("falha ao criar compra: %w", err)
	}

	return nil
}
