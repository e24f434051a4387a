package repository

import (
	"context"
	"errors"

	"github.com/diillson/warehouse-api/internal/domain/model"
)

// Erros sentinela retornados pelos repositórios; mapeados para HTTP na borda
var (
	ErrNotFound  = errors.New("registro não encontrado")
	ErrDuplicate = errors.New("registro já existe")
)

// UserRepository define a interface para acesso a dados de usuário
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.UserEntity, error)
	GetByID(ctx context.Context, id uint) (*model.UserEntity, error)
	Create(ctx context.Context, user *model.UserEntity) error
}

// ProductRepository define a interface para acesso a dados de produto
type ProductRepository interface {
	GetByID(ctx context.Context, id uint) (*model.ProductEntity, error)
	GetAll(ctx context.Context) ([]*model.ProductEntity, error)
	Create(ctx context.Context, product *model.ProductEntity) error
}

// ClientRepository define a interface para acesso a dados de cliente
type ClientRepository interface {
	GetByID(ctx context.Context, id uint) (*model.ClientEntity, error)
	GetAll(ctx context.Context) ([]*model.ClientEntity, error)
	Create(ctx context.Context, client *model.ClientEntity) error
}

// PurchaseRepository define a interface para acesso a dados de compra
type PurchaseRepository interface {
	GetByClient(ctx context.Context, clientID uint) ([]*model.PurchaseEntity, error)
	Create(ctx context.Context, purchase *model.PurchaseEntity) error
}
