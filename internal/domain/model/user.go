package model

import "time"

// User representa um usuário do sistema
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserEntity é a representação de banco de dados de um usuário.
// Username é sempre armazenado em minúsculas; o hash nunca é serializado.
type UserEntity struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;not null;size:64"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;size:32"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName define o nome da tabela
func (UserEntity) TableName() string {
	return "users"
}

// ToModel converte a entidade para o modelo exposto pela API
func (e *UserEntity) ToModel() *User {
	return &User{
		ID:       e.ID,
		Username: e.Username,
		Role:     e.Role,
	}
}
