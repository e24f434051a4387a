package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/diillson/warehouse-api/internal/domain/repository"
	"github.com/diillson/warehouse-api/pkg/security"
	"go.uber.org/zap"
)

// Erros expostos pelo serviço de autenticação
var (
	// ErrInvalidCredentials cobre tanto usuário inexistente quanto senha
	// errada; a resposta não distingue os dois casos
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserExists         = errors.New("usuário já existe")
	ErrUserNotFound       = errors.New("usuário não encontrado")
)

// Service gerencia operações de autenticação e cadastro de usuários
type Service struct {
	keyManager *security.KeyManager
	userRepo   repository.UserRepository
	tokenTTL   time.Duration
	logger     *zap.Logger
}

// NewService cria um novo serviço de autenticação
func NewService(keyManager *security.KeyManager, userRepo repository.UserRepository, tokenTTL time.Duration, logger *zap.Logger) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &Service{
		keyManager: keyManager,
		userRepo:   userRepo,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// Authorize autentica um usuário pelo login normalizado e gera o token de
// sessão. Qualquer falha vira ErrInvalidCredentials.
func (s *Service) Authorize(ctx context.Context, login, password string) (*model.User, string, error) {
	username := strings.ToLower(login)

	entity, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("Falha na autenticação", zap.String("username", username))
		return nil, "", ErrInvalidCredentials
	}

	if !VerifyPassword(password, entity.PasswordHash) {
		s.logger.Warn("Falha na autenticação", zap.String("username", username))
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.keyManager.GenerateToken(entity.ID, entity.Role, s.tokenTTL)
	if err != nil {
		s.logger.Error("Falha ao gerar token", zap.Uint("user_id", entity.ID), zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("Login bem-sucedido", zap.Uint("user_id", entity.ID))
	return entity.ToModel(), token, nil
}

// Register cadastra um novo usuário com o papel informado. O papel é texto
// livre, armazenado como veio.
func (s *Service) Register(ctx context.Context, username, password, role string) (*model.User, error) {
	username = strings.ToLower(username)

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		s.logger.Error("Erro ao gerar hash da senha", zap.Error(err))
		return nil, err
	}

	entity := &model.UserEntity{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		// Registro concorrente do mesmo nome perde para o índice único
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	s.logger.Info("Usuário registrado",
		zap.Uint("user_id", entity.ID),
		zap.String("username", username),
		zap.String("role", role))

	return entity.ToModel(), nil
}

// Lookup busca um usuário pelo nome, com a mesma normalização do registro
func (s *Service) Lookup(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(username)

	entity, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return entity.ToModel(), nil
}

// ValidateToken valida um token JWT e retorna o usuário correspondente
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := s.keyManager.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	entity, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Warn("Usuário do token não encontrado", zap.Uint("user_id", claims.UserID))
		return nil, errors.New("usuário inválido")
	}

	return entity.ToModel(), nil
}

// IsAdmin verifica se um usuário tem permissão administrativa
func (s *Service) IsAdmin(user *model.User) bool {
	return user != nil && strings.EqualFold(user.Role, "admin")
}
