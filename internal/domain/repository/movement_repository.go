package repository

import (
	"context"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
)

// MovementFilter filtros opcionais do histórico de movimentações, combinados com AND.
// From e To delimitam por dia (inclusivo nas duas pontas); ambos nil = todo o período.
type MovementFilter struct {
	Action string // entrada | retirada; vazio = todas
	Search string // substring de nome ou código de barras, case-insensitive
	From   *time.Time
	To     *time.Time
}

// MovementRepository define o porto de persistência do livro de movimentações.
// O livro é append-only: nenhuma operação atualiza ou remove registros.
type MovementRepository interface {
	// Create insere o registro e preenche ID e Timestamp atribuídos pelo banco.
	Create(m *entity.Movement) error
	// List devolve uma página ordenada por timestamp descendente.
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	Count(ctx context.Context, filter MovementFilter) (int, error)
	// ListAll devolve todas as movimentações do filtro (exportação de relatório).
	ListAll(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
