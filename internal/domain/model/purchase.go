package model

// Purchase representa uma compra de um produto por um cliente
type Purchase struct {
	ClientID  uint `json:"client_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// PurchaseEntity é a representação de banco de dados de uma compra.
// A chave primária composta garante no máximo uma linha por par (cliente, produto).
type PurchaseEntity struct {
	ClientID  uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false"`
	Quantity  int  `gorm:"not null"`

	Client  ClientEntity  `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Product ProductEntity `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName define o nome da tabela
func (PurchaseEntity) TableName() string {
	return "purchases"
}

// ToModel converte a entidade para o modelo exposto pela API
func (e *PurchaseEntity) ToModel() *Purchase {
	return &Purchase{
		ClientID:  e.ClientID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
	}
}
