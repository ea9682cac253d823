package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas do painel inicial, sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// TotalUnits soma as quantidades de todas as linhas do estoque.
func (r *StatsRepo) TotalUnits(ctx context.Context) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantidade), 0) FROM estoque`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total units: %w", err)
	}
	return total, nil
}

// LowStockCount conta itens com quantidade <= threshold.
func (r *StatsRepo) LowStockCount(ctx context.Context, threshold int) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM estoque WHERE quantidade <= $1`, threshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("low stock count: %w", err)
	}
	return count, nil
}

// NextExpiry devolve a validade de exibição mais próxima a partir do epoch informado.
func (r *StatsRepo) NextExpiry(ctx context.Context, fromEpoch int64) (string, error) {
	var text string
	err := r.q.QueryRow(ctx,
		`SELECT validade_text FROM estoque WHERE validade_int >= $1 ORDER BY validade_int ASC LIMIT 1`,
		fromEpoch,
	).Scan(&text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("next expiry: %w", err)
	}
	return text, nil
}

// MovementsOn conta movimentações registradas no dia informado.
func (r *StatsRepo) MovementsOn(ctx context.Context, day time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM movimentacao WHERE timestamp::date = $1::date`, day,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("movements on day: %w", err)
	}
	return count, nil
}

// Categories lista os códigos de categoria distintos presentes no estoque.
func (r *StatsRepo) Categories(ctx context.Context) ([]int, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT categoria FROM estoque ORDER BY categoria ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []int
	for rows.Next() {
		var c int
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}
