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

// ProductRepository implementa repository.ProductRepository
type ProductRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewProductRepository cria um novo repositório de produtos
func NewProductRepository(db *gorm.DB, logger *zap.Logger) repository.ProductRepository {
	tracer := otel.GetTracerProvider().Tracer("warehouse-api.repository.product")

	return &ProductRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// GetByID busca um produto pela chave primária
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*model.ProductEntity, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.GetByID",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "products"),
		),
	)
	defer span.End()

	var product model.ProductEntity
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		r.logger.Error("falha ao buscar produto", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("falha ao buscar produto: %w", err)
	}

	return &product, nil
}

// GetAll retorna a lista completa de produtos, sem filtro nem paginação
func (r *ProductRepository) GetAll(ctx context.Context) ([]*model.ProductEntity, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.GetAll",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "products"),
		),
	)
	defer span.End()

	var products []*model.ProductEntity
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		r.logger.Error("falha ao listar produtos", zap.Error(err))
		return nil, fmt.Errorf("falha ao listar produtos: %w", err)
	}

	return products, nil
}

// Create insere um novo produto e preenche o ID gerado
func (r *ProductRepository) Create(ctx context.Context, product *model.ProductEntity) error {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Create",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "products"),
		),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		r.logger.Error("falha ao criar produto", zap.String("name", product.Name), zap.Error(err))
		return fmt.Errorf("falha ao criar produto: %w", err)
	}

	return nil
}
