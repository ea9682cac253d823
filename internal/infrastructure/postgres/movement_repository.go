package postgres

import (
	"context"
	"fmt"

	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, product_barcode, name, action, quantidade, COALESCE(motivo, ''), timestamp`

// MovementRepo implementação de MovementRepository sobre PostgreSQL (usável com pool ou tx).
// Livro append-only: só insere e lê.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação; ID e Timestamp são atribuídos pelo banco.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movimentacao (product_id, product_barcode, name, action, quantidade, motivo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, timestamp`
	motivo := (*string)(nil)
	if m.Reason != "" {
		motivo = &m.Reason
	}
	err := r.q.QueryRow(context.Background(), query,
		m.ProductID, m.Barcode, m.Name, m.Action, m.Quantity, motivo,
	).Scan(&m.ID, &m.Timestamp)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// buildMovementWhere monta a cláusula WHERE dos filtros opcionais.
// As datas delimitam por dia, inclusivas nas duas pontas.
func buildMovementWhere(filter repository.MovementFilter) (string, []any) {
	var clauses []string
	var args []any
	pos := 1

	if filter.Action != "" {
		clauses = append(clauses, fmt.Sprintf("action = $%d", pos))
		args = append(args, filter.Action)
		pos++
	}
	if filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR product_barcode ILIKE $%d)", pos, pos))
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.From != nil {
		clauses = append(clauses, fmt.Sprintf("timestamp::date >= $%d::date", pos))
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		clauses = append(clauses, fmt.Sprintf("timestamp::date <= $%d::date", pos))
		args = append(args, *filter.To)
		pos++
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + clauses[0]
		for _, c := range clauses[1:] {
			where += " AND " + c
		}
	}
	return where, args
}

func (r *MovementRepo) queryMovements(ctx context.Context, query string, args []any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Barcode, &m.Name, &m.Action,
			&m.Quantity, &m.Reason, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// List devolve uma página do histórico, timestamp descendente (mais recente primeiro).
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	where, args := buildMovementWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM movimentacao %s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`,
		movementColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryMovements(ctx, query, args)
}

// Count conta os registros do filtro (para paginação).
func (r *MovementRepo) Count(ctx context.Context, filter repository.MovementFilter) (int, error) {
	where, args := buildMovementWhere(filter)
	var count int
	err := r.q.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM movimentacao %s`, where), args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

// ListAll devolve todas as movimentações do filtro, sem paginação (exportação).
func (r *MovementRepo) ListAll(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	where, args := buildMovementWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM movimentacao %s ORDER BY timestamp DESC`, movementColumns, where)
	return r.queryMovements(ctx, query, args)
}
