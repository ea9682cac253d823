package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, codigo_de_barras, lote, validade_int, validade_text, produto_nome, quantidade, COALESCE(image_path, ''), categoria`

// StockRepo implementação de StockRepository sobre PostgreSQL (usável com pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	err := row.Scan(
		&s.ID, &s.Barcode, &s.Batch, &s.ExpiresAt, &s.ExpiresText,
		&s.ProductName, &s.Quantity, &s.ImagePath, &s.Category,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID obtém um item por ID. Devolve nil, nil quando não existe.
func (r *StockRepo) GetByID(id int64) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM estoque WHERE id = $1`
	s, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return s, nil
}

// GetByIDForUpdate obtém o item e bloqueia a linha (SELECT FOR UPDATE).
func (r *StockRepo) GetByIDForUpdate(id int64) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM estoque WHERE id = $1 FOR UPDATE`
	s, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return s, nil
}

// GetByNaturalKeyForUpdate busca pela chave natural (código de barras, validade)
// bloqueando a linha. Serializa entradas e retiradas concorrentes no mesmo item.
func (r *StockRepo) GetByNaturalKeyForUpdate(barcode string, expiresAt int64) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM estoque
		WHERE codigo_de_barras = $1 AND validade_int = $2
		FOR UPDATE`
	s, err := scanStockItem(r.q.QueryRow(context.Background(), query, barcode, expiresAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item by natural key: %w", err)
	}
	return s, nil
}

// GetAnyByBarcode devolve a linha de validade mais próxima para o código de barras.
func (r *StockRepo) GetAnyByBarcode(barcode string) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM estoque
		WHERE codigo_de_barras = $1
		ORDER BY validade_int ASC LIMIT 1`
	s, err := scanStockItem(r.q.QueryRow(context.Background(), query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item by barcode: %w", err)
	}
	return s, nil
}

// Create insere uma nova linha de estoque e preenche o ID gerado.
func (r *StockRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO estoque (codigo_de_barras, lote, validade_int, validade_text, produto_nome, quantidade, image_path, categoria)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Barcode, item.Batch, item.ExpiresAt, item.ExpiresText,
		item.ProductName, item.Quantity, item.ImagePath, item.Category,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update sobrescreve quantidade e metadados descritivos (last-write-wins).
func (r *StockRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE estoque
		SET quantidade = $2, validade_int = $3, validade_text = $4, categoria = $5,
		    produto_nome = $6, image_path = $7, lote = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.ExpiresAt, item.ExpiresText,
		item.Category, item.ProductName, item.ImagePath, item.Batch,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// UpdateQuantity atualiza apenas a quantidade de um item.
func (r *StockRepo) UpdateQuantity(id int64, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE estoque SET quantidade = $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// DeleteExhausted remove toda linha com quantidade <= 0 (sweep). Idempotente.
func (r *StockRepo) DeleteExhausted() (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM estoque WHERE quantidade <= 0`)
	if err != nil {
		return 0, fmt.Errorf("delete exhausted stock: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// buildStockWhere monta a cláusula WHERE dos filtros opcionais.
func buildStockWhere(filter repository.StockFilter) (string, []any) {
	var clauses []string
	var args []any
	pos := 1

	if filter.Category != nil {
		clauses = append(clauses, fmt.Sprintf("categoria = $%d", pos))
		args = append(args, *filter.Category)
		pos++
	}
	if filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("produto_nome ILIKE $%d", pos))
		args = append(args, "%"+filter.Search+"%")
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

func stockOrderBy(sort repository.SortKey) string {
	switch sort {
	case repository.SortByName:
		return "ORDER BY produto_nome ASC"
	case repository.SortByQuantity:
		return "ORDER BY quantidade DESC"
	default:
		return "ORDER BY validade_int ASC"
	}
}

// List devolve uma página do estoque conforme filtros e ordenação.
func (r *StockRepo) List(ctx context.Context, filter repository.StockFilter, limit, offset int) ([]*entity.StockItem, error) {
	where, args := buildStockWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM estoque %s %s LIMIT $%d OFFSET $%d`,
		stockColumns, where, stockOrderBy(filter.Sort), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockItem
	for rows.Next() {
		s, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count conta as linhas do filtro (antes de LIMIT/OFFSET, para paginação).
func (r *StockRepo) Count(ctx context.Context, filter repository.StockFilter) (int, error) {
	where, args := buildStockWhere(filter)
	var count int
	err := r.q.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM estoque %s`, where), args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stock: %w", err)
	}
	return count, nil
}

// ListByBarcode devolve todas as linhas de um código de barras, validade ascendente.
func (r *StockRepo) ListByBarcode(ctx context.Context, barcode string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM estoque
		WHERE codigo_de_barras = $1
		ORDER BY validade_int ASC`
	rows, err := r.q.Query(ctx, query, barcode)
	if err != nil {
		return nil, fmt.Errorf("list stock by barcode: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockItem
	for rows.Next() {
		s, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
