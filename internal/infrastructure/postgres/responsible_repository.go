package postgres

import (
	"context"
	"fmt"

	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

var _ repository.ResponsibleRepository = (*ResponsibleRepo)(nil)

// ResponsibleRepo implementação de ResponsibleRepository sobre PostgreSQL.
type ResponsibleRepo struct {
	q Querier
}

// NewResponsibleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewResponsibleRepository(q Querier) *ResponsibleRepo {
	return &ResponsibleRepo{q: q}
}

// Create insere um responsável. Nome duplicado devolve domain.ErrDuplicate.
func (r *ResponsibleRepo) Create(resp *entity.Responsible) error {
	query := `INSERT INTO responsaveis (nome) VALUES ($1) RETURNING id, criado_em`
	err := r.q.QueryRow(context.Background(), query, resp.Name).Scan(&resp.ID, &resp.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert responsible: %w", err)
	}
	return nil
}

// List devolve todos os responsáveis ordenados por nome.
func (r *ResponsibleRepo) List() ([]*entity.Responsible, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome, criado_em FROM responsaveis ORDER BY nome ASC`)
	if err != nil {
		return nil, fmt.Errorf("list responsibles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Responsible
	for rows.Next() {
		var resp entity.Responsible
		if err := rows.Scan(&resp.ID, &resp.Name, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan responsible: %w", err)
		}
		list = append(list, &resp)
	}
	return list, rows.Err()
}

// Delete remove um responsável. Devolve domain.ErrNotFound quando o id não existe.
func (r *ResponsibleRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM responsaveis WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete responsible: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
