package inventory

import (
	"context"

	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante atomicidade entre a mutação do estoque e o registro
// no livro de movimentações: ou ambos são gravados, ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error) error
}
