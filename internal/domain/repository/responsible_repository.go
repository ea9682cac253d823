package repository

import "github.com/bancodealimentos/estoque-api/internal/domain/entity"

// ResponsibleRepository define o porto de persistência dos responsáveis.
type ResponsibleRepository interface {
	// Create devolve domain.ErrDuplicate quando o nome já existe.
	Create(r *entity.Responsible) error
	// List devolve todos os responsáveis ordenados por nome.
	List() ([]*entity.Responsible, error)
	// Delete devolve domain.ErrNotFound quando o id não existe.
	Delete(id int64) error
}
