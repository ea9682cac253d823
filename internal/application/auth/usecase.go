// Package auth autenticação de usuários e emissão de tokens.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
	"github.com/bancodealimentos/estoque-api/pkg/config"
	"github.com/bancodealimentos/estoque-api/pkg/jwt"
	"github.com/bancodealimentos/estoque-api/pkg/logger"
)

// UseCase login com senha bcrypt e emissão de JWT.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewUseCase constrói o caso de uso de autenticação.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login valida as credenciais e devolve um token assinado.
// Usuário inexistente e senha incorreta devolvem o mesmo erro.
func (uc *UseCase) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("buscar usuário: %w", err)
	}
	if user == nil {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return "", fmt.Errorf("emitir token: %w", err)
	}
	return token, nil
}

// SeedAdmin cria o usuário administrador inicial quando a tabela está vazia.
// Idempotente: não faz nada se já existir qualquer usuário.
func (uc *UseCase) SeedAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	count, err := uc.userRepo.Count()
	if err != nil {
		return fmt.Errorf("contar usuários: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("gerar hash: %w", err)
	}
	user := &entity.User{Username: username, PasswordHash: string(hash)}
	if err := uc.userRepo.Create(user); err != nil {
		return fmt.Errorf("criar administrador: %w", err)
	}
	uc.log.Info().Str("username", username).Msg("usuário administrador inicial criado")
	return nil
}
