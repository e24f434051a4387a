package model

// Client representa um cliente do armazém
type Client struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// ClientEntity é a representação de banco de dados de um cliente
type ClientEntity struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;size:100"`
	ContactInfo string `gorm:"type:text"`
}

// TableName define o nome da tabela
func (ClientEntity) TableName() string {
	return "clients"
}

// ToModel converte a entidade para o modelo exposto pela API
func (e *ClientEntity) ToModel() *Client {
	return &Client{
		ID:          e.ID,
		Name:        e.Name,
		ContactInfo: e.ContactInfo,
	}
}
