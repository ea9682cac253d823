package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória — simulam o comportamento dos adaptadores PostgreSQL,
// incluindo a atomicidade do TxRunner (rollback restaura o estado anterior).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	items  map[int64]*entity.StockItem
	nextID int64
	// erro injetado nas leituras, para testar a degradação das listagens
	failReads error
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{items: make(map[int64]*entity.StockItem), nextID: 1}
}

func (f *fakeStockRepo) clone() *fakeStockRepo {
	c := &fakeStockRepo{items: make(map[int64]*entity.StockItem, len(f.items)), nextID: f.nextID}
	for id, it := range f.items {
		cp := *it
		c.items[id] = &cp
	}
	return c
}

func (f *fakeStockRepo) restore(from *fakeStockRepo) {
	f.items = from.items
	f.nextID = from.nextID
}

func (f *fakeStockRepo) GetByID(id int64) (*entity.StockItem, error) {
	if it, ok := f.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStockRepo) GetByIDForUpdate(id int64) (*entity.StockItem, error) {
	return f.GetByID(id)
}

func (f *fakeStockRepo) GetByNaturalKeyForUpdate(barcode string, expiresAt int64) (*entity.StockItem, error) {
	for _, it := range f.items {
		if it.Barcode == barcode && it.ExpiresAt == expiresAt {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStockRepo) GetAnyByBarcode(barcode string) (*entity.StockItem, error) {
	var best *entity.StockItem
	for _, it := range f.items {
		if it.Barcode != barcode {
			continue
		}
		if best == nil || it.ExpiresAt < best.ExpiresAt {
			best = it
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	item.ID = f.nextID
	f.nextID++
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeStockRepo) Update(item *entity.StockItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeStockRepo) UpdateQuantity(id int64, quantity int) error {
	if it, ok := f.items[id]; ok {
		it.Quantity = quantity
	}
	return nil
}

func (f *fakeStockRepo) DeleteExhausted() (int64, error) {
	var n int64
	for id, it := range f.items {
		if it.Quantity <= 0 {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeStockRepo) matches(it *entity.StockItem, filter repository.StockFilter) bool {
	if filter.Category != nil && it.Category != *filter.Category {
		return false
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(it.ProductName), strings.ToLower(filter.Search)) {
		return false
	}
	return true
}

func (f *fakeStockRepo) sorted(filter repository.StockFilter) []*entity.StockItem {
	out := make([]*entity.StockItem, 0, len(f.items))
	for _, it := range f.items {
		if f.matches(it, filter) {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		switch filter.Sort {
		case repository.SortByName:
			return out[i].ProductName < out[j].ProductName
		case repository.SortByQuantity:
			return out[i].Quantity > out[j].Quantity
		default:
			return out[i].ExpiresAt < out[j].ExpiresAt
		}
	})
	return out
}

func (f *fakeStockRepo) List(_ context.Context, filter repository.StockFilter, limit, offset int) ([]*entity.StockItem, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	all := f.sorted(filter)
	if offset >= len(all) {
		return []*entity.StockItem{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeStockRepo) Count(_ context.Context, filter repository.StockFilter) (int, error) {
	if f.failReads != nil {
		return 0, f.failReads
	}
	return len(f.sorted(filter)), nil
}

func (f *fakeStockRepo) ListByBarcode(_ context.Context, barcode string) ([]*entity.StockItem, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	out := []*entity.StockItem{}
	for _, it := range f.sorted(repository.StockFilter{}) {
		if it.Barcode == barcode {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
	nextID    int64
	failReads error
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 1}
}

func (f *fakeMovementRepo) clone() *fakeMovementRepo {
	c := &fakeMovementRepo{movements: make([]*entity.Movement, len(f.movements)), nextID: f.nextID}
	for i, m := range f.movements {
		cp := *m
		c.movements[i] = &cp
	}
	return c
}

func (f *fakeMovementRepo) restore(from *fakeMovementRepo) {
	f.movements = from.movements
	f.nextID = from.nextID
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	m.ID = f.nextID
	f.nextID++
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) filtered(filter repository.MovementFilter) []*entity.Movement {
	out := []*entity.Movement{}
	for _, m := range f.movements {
		if filter.Action != "" && m.Action != filter.Action {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(m.Name), s) && !strings.Contains(strings.ToLower(m.Barcode), s) {
				continue
			}
		}
		day := time.Date(m.Timestamp.Year(), m.Timestamp.Month(), m.Timestamp.Day(), 0, 0, 0, 0, m.Timestamp.Location())
		if filter.From != nil && day.Before(*filter.From) {
			continue
		}
		if filter.To != nil && day.After(*filter.To) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

func (f *fakeMovementRepo) List(_ context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	all := f.filtered(filter)
	if offset >= len(all) {
		return []*entity.Movement{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeMovementRepo) Count(_ context.Context, filter repository.MovementFilter) (int, error) {
	if f.failReads != nil {
		return 0, f.failReads
	}
	return len(f.filtered(filter)), nil
}

func (f *fakeMovementRepo) ListAll(_ context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	return f.filtered(filter), nil
}

// fakeTxRunner aplica fn sobre os fakes e restaura o estado anterior quando
// fn devolve erro, espelhando o rollback do TxRunner real.
type fakeTxRunner struct {
	stock *fakeStockRepo
	mov   *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.StockRepository, repository.MovementRepository) error) error {
	stockSnap := r.stock.clone()
	movSnap := r.mov.clone()
	if err := fn(r.stock, r.mov); err != nil {
		r.stock.restore(stockSnap)
		r.mov.restore(movSnap)
		return err
	}
	return nil
}
