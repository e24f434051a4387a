package model

// Product representa um produto do estoque
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ProductEntity é a representação de banco de dados de um produto
type ProductEntity struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"not null;size:100"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
}

// TableName define o nome da tabela
func (ProductEntity) TableName() string {
	return "products"
}

// ToModel converte a entidade para o modelo exposto pela API
func (e *ProductEntity) ToModel() *Product {
	return &Product{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Quantity:    e.Quantity,
	}
}
