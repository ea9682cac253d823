package repository

import (
	"context"

	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
)

// SortKey chaves de ordenação aceitas na listagem de estoque.
type SortKey string

const (
	SortByExpiry   SortKey = "validade"   // validade ascendente (padrão)
	SortByName     SortKey = "nome"       // nome ascendente
	SortByQuantity SortKey = "quantidade" // quantidade descendente
)

// ParseSortKey normaliza a chave de ordenação; valores desconhecidos caem no padrão.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName, SortByQuantity, SortByExpiry:
		return SortKey(s)
	default:
		return SortByExpiry
	}
}

// StockFilter filtros opcionais da listagem de estoque, combinados com AND.
type StockFilter struct {
	Category *int    // categoria exata
	Search   string  // substring do nome, case-insensitive
	Sort     SortKey // vazio = SortByExpiry
}

// StockRepository define o porto de persistência do livro de estoque.
// Os métodos *ForUpdate bloqueiam a linha (SELECT FOR UPDATE) e só fazem
// sentido dentro de uma transação.
type StockRepository interface {
	// GetByID devolve nil, nil quando o item não existe.
	GetByID(id int64) (*entity.StockItem, error)
	GetByIDForUpdate(id int64) (*entity.StockItem, error)
	// GetByNaturalKeyForUpdate busca pela chave natural (código de barras, validade).
	GetByNaturalKeyForUpdate(barcode string, expiresAt int64) (*entity.StockItem, error)
	// GetAnyByBarcode devolve qualquer linha com o código de barras, priorizando a
	// validade mais próxima. Usado para resolver metadados no modo rápido.
	GetAnyByBarcode(barcode string) (*entity.StockItem, error)
	// Create insere uma nova linha e preenche o ID gerado.
	Create(item *entity.StockItem) error
	// Update sobrescreve quantidade e metadados descritivos (last-write-wins).
	Update(item *entity.StockItem) error
	UpdateQuantity(id int64, quantity int) error
	// DeleteExhausted remove toda linha com quantidade <= 0 e devolve o total removido.
	DeleteExhausted() (int64, error)

	List(ctx context.Context, filter StockFilter, limit, offset int) ([]*entity.StockItem, error)
	Count(ctx context.Context, filter StockFilter) (int, error)
	// ListByBarcode devolve todas as linhas de um código de barras, validade ascendente.
	ListByBarcode(ctx context.Context, barcode string) ([]*entity.StockItem, error)
}
