package inventory

import (
	"context"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
	"github.com/bancodealimentos/estoque-api/pkg/logger"
)

// Page metadados de paginação devolvidos pelas listagens.
// Páginas são 1-based; pedidos fora do intervalo são grampeados em [1, TotalPages].
type Page struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalRows  int `json:"total_rows"`
}

// HasPrev e HasNext flags de navegação.
func (p Page) HasPrev() bool { return p.Page > 1 }
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// clampPage calcula os metadados e grampeia a página pedida no intervalo válido.
func clampPage(page, perPage, totalRows int) Page {
	if perPage <= 0 {
		perPage = 24
	}
	totalPages := (totalRows + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Page{Page: page, PerPage: perPage, TotalPages: totalPages, TotalRows: totalRows}
}

// StockListItem item de estoque com o status de validade calculado para exibição.
type StockListItem struct {
	entity.StockItem
	ExpiryStatus string `json:"status_validade"`
}

// QueryUseCase listagens paginadas de estoque e histórico. Falhas de leitura
// degradam para resultado vazio (com log) para manter as telas resilientes.
type QueryUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovementRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewQueryUseCase constrói o caso de uso de consultas.
func NewQueryUseCase(stockRepo repository.StockRepository, movRepo repository.MovementRepository, log *logger.Logger) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, movRepo: movRepo, log: log, now: time.Now}
}

// ListStock devolve uma página do estoque conforme filtros e ordenação,
// com o status de validade de cada item em relação a hoje.
func (uc *QueryUseCase) ListStock(ctx context.Context, filter repository.StockFilter, page, perPage int) ([]StockListItem, Page) {
	total, err := uc.stockRepo.Count(ctx, filter)
	if err != nil {
		uc.log.Error().Err(err).Msg("contagem de estoque falhou; devolvendo página vazia")
		return []StockListItem{}, clampPage(page, perPage, 0)
	}

	pg := clampPage(page, perPage, total)
	items, err := uc.stockRepo.List(ctx, filter, pg.PerPage, (pg.Page-1)*pg.PerPage)
	if err != nil {
		uc.log.Error().Err(err).Msg("listagem de estoque falhou; devolvendo página vazia")
		return []StockListItem{}, pg
	}

	today := uc.now()
	out := make([]StockListItem, 0, len(items))
	for _, it := range items {
		out = append(out, StockListItem{StockItem: *it, ExpiryStatus: it.ExpiryStatus(today)})
	}
	return out, pg
}

// ListMovements devolve uma página do histórico, mais recente primeiro.
func (uc *QueryUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter, page, perPage int) ([]*entity.Movement, Page) {
	total, err := uc.movRepo.Count(ctx, filter)
	if err != nil {
		uc.log.Error().Err(err).Msg("contagem de movimentações falhou; devolvendo página vazia")
		return []*entity.Movement{}, clampPage(page, perPage, 0)
	}

	pg := clampPage(page, perPage, total)
	movs, err := uc.movRepo.List(ctx, filter, pg.PerPage, (pg.Page-1)*pg.PerPage)
	if err != nil {
		uc.log.Error().Err(err).Msg("listagem de movimentações falhou; devolvendo página vazia")
		return []*entity.Movement{}, pg
	}
	if movs == nil {
		movs = []*entity.Movement{}
	}
	return movs, pg
}

// ListByBarcode devolve todas as linhas de estoque de um código de barras,
// validade ascendente. Falha de leitura degrada para lista vazia.
func (uc *QueryUseCase) ListByBarcode(ctx context.Context, barcode string) []*entity.StockItem {
	if barcode == "" {
		return []*entity.StockItem{}
	}
	items, err := uc.stockRepo.ListByBarcode(ctx, barcode)
	if err != nil {
		uc.log.Error().Err(err).Str("codigo", barcode).Msg("busca por código de barras falhou")
		return []*entity.StockItem{}
	}
	if items == nil {
		items = []*entity.StockItem{}
	}
	return items
}
