package repository

import (
	"context"
	"time"
)

// StatsRepository agrega consultas de leitura do painel inicial.
type StatsRepository interface {
	// TotalUnits soma as quantidades de todas as linhas do estoque.
	TotalUnits(ctx context.Context) (int, error)
	// LowStockCount conta itens com quantidade <= threshold.
	LowStockCount(ctx context.Context, threshold int) (int, error)
	// NextExpiry devolve a validade (texto de exibição) mais próxima a partir de hoje;
	// string vazia quando não há itens futuros.
	NextExpiry(ctx context.Context, fromEpoch int64) (string, error)
	// MovementsOn conta movimentações registradas no dia informado.
	MovementsOn(ctx context.Context, day time.Time) (int, error)
	// Categories lista os códigos de categoria distintos presentes no estoque.
	Categories(ctx context.Context) ([]int, error)
}
