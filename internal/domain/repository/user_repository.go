package repository

import "github.com/bancodealimentos/estoque-api/internal/domain/entity"

// UserRepository define o porto de persistência de usuários.
type UserRepository interface {
	// GetByUsername devolve nil, nil quando o usuário não existe.
	GetByUsername(username string) (*entity.User, error)
	Create(u *entity.User) error
	Count() (int, error)
}
