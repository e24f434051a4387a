package catalog

import (
	"context"
	"errors"

	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/diillson/warehouse-api/internal/domain/repository"
	"go.uber.org/zap"
)

// Erros expostos pelo serviço de catálogo
var (
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrClientNotFound  = errors.New("cliente não encontrado")
	ErrPurchaseExists  = errors.New("compra já existe")
	ErrInvalidPrice    = errors.New("preço não pode ser negativo")
	ErrInvalidQuantity = errors.New("quantidade inválida")
)

// Service expõe as operações de produtos, clientes e compras do armazém
type Service struct {
	products  repository.ProductRepository
	clients   repository.ClientRepository
	purchases repository.PurchaseRepository
	logger    *zap.Logger
}

// NewService cria um novo serviço de catálogo
func NewService(products repository.ProductRepository, clients repository.ClientRepository, purchases repository.PurchaseRepository, logger *zap.Logger) *Service {
	return &Service{
		products:  products,
		clients:   clients,
		purchases: purchases,
		logger:    logger,
	}
}

// GetProduct busca um produto pelo id
func (s *Service) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	entity, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return entity.ToModel(), nil
}

// ListProducts retorna todos os produtos
func (s *Service) ListProducts(ctx context.Context) ([]*model.Product, error) {
	entities, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]*model.Product, 0, len(entities))
	for _, entity := range entities {
		products = append(products, entity.ToModel())
	}
	return products, nil
}

// CreateProduct valida e persiste um novo produto
func (s *Service) CreateProduct(ctx context.Context, name, description string, price float64, quantity int) (*model.Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	entity := &model.ProductEntity{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}

	if err := s.products.Create(ctx, entity); err != nil {
		return nil, err
	}

	s.logger.Info("Produto criado", zap.Uint("id", entity.ID), zap.String("name", name))
	return entity.ToModel(), nil
}

// GetClient busca um cliente pelo id
func (s *Service) GetClient(ctx context.Context, id uint) (*model.Client, error) {
	entity, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return entity.ToModel(), nil
}

// ListClients retorna todos os clientes
func (s *Service) ListClients(ctx context.Context) ([]*model.Client, error) {
	entities, err := s.clients.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	clients := make([]*model.Client, 0, len(entities))
	for _, entity := range entities {
		clients = append(clients, entity.ToModel())
	}
	return clients, nil
}

// CreateClient persiste um novo cliente
func (s *Service) CreateClient(ctx context.Context, name, contactInfo string) (*model.Client, error) {
	entity := &model.ClientEntity{
		Name:        name,
		ContactInfo: contactInfo,
	}

	if err := s.clients.Create(ctx, entity); err != nil {
		return nil, err
	}

	s.logger.Info("Cliente criado", zap.Uint("id", entity.ID), zap.String("name", name))
	return entity.ToModel(), nil
}

// CreatePurchase registra a compra de um produto por um cliente. Ambas as
// referências precisam existir e o par (cliente, produto) é único.
func (s *Service) CreatePurchase(ctx context.Context, clientID, productID uint, quantity int) (*model.Purchase, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	entity := &model.PurchaseEntity{
		ClientID:  clientID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := s.purchases.Create(ctx, entity); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPurchaseExists
		}
		return nil, err
	}

	s.logger.Info("Compra registrada",
		zap.Uint("client_id", clientID),
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity))

	return entity.ToModel(), nil
}

// ListPurchases retorna as compras de um cliente
func (s *Service) ListPurchases(ctx context.Context, clientID uint) ([]*model.Purchase, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	entities, err := s.purchases.GetByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	purchases := make([]*model.Purchase, 0, len(entities))
	for _, entity := range entities {
		purchases = append(purchases, entity.ToModel())
	}
	return purchases, nil
}
