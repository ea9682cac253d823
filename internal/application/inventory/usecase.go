package inventory

import (
	"context"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

// Motivo registrado nos ajustes rápidos de +1.
const quickAdjustReason = "Adição rápida"

// LedgerUseCase aplica as mutações do estoque de forma transacional:
// entrada (merge pela chave natural), retirada (validada contra o disponível),
// ajuste rápido e limpeza de itens zerados. Toda mutação aceita espelha
// exatamente um registro no livro de movimentações, na mesma transação,
// com bloqueio de linha (SELECT FOR UPDATE) contra retiradas concorrentes.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase constrói o caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// IntakeInput entrada para registrar uma adição ao estoque.
// Em QuickMode os metadados descritivos são resolvidos de uma linha existente
// com o mesmo código de barras; caso contrário vêm do formulário completo.
type IntakeInput struct {
	Barcode     string
	ExpiresAt   time.Time // data de validade já validada pela borda
	ProductName string
	Batch       string
	Category    int
	ImagePath   string
	Quantity    int
	Note        string // motivo opcional (adições via modal)
	QuickMode   bool
}

// RegisterIntake soma a quantidade à linha (código de barras, validade) existente,
// sobrescrevendo os metadados descritivos (last-write-wins), ou cria a linha se a
// chave natural ainda não existe. Registra a movimentação de entrada na mesma transação.
func (uc *LedgerUseCase) RegisterIntake(ctx context.Context, input IntakeInput) (*entity.StockItem, *entity.Movement, error) {
	if input.Quantity <= 0 {
		return nil, nil, domain.ErrInvalidQuantity
	}
	if input.Barcode == "" || input.ExpiresAt.IsZero() {
		return nil, nil, domain.ErrValidation
	}
	if !input.QuickMode && input.ProductName == "" {
		return nil, nil, domain.ErrValidation
	}

	expiresAt := midnight(input.ExpiresAt)
	expiresText := expiresAt.Format("02/01/2006")

	var item *entity.StockItem
	var mov *entity.Movement

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		existing, err := stockRepo.GetByNaturalKeyForUpdate(input.Barcode, expiresAt.Unix())
		if err != nil {
			return err
		}

		name, batch, category, imagePath := input.ProductName, input.Batch, input.Category, input.ImagePath
		if input.QuickMode {
			// Modo rápido: reaproveita os metadados de uma linha existente do mesmo
			// código de barras (mesma validade primeiro, senão a mais próxima).
			ref := existing
			if ref == nil {
				ref, err = stockRepo.GetAnyByBarcode(input.Barcode)
				if err != nil {
					return err
				}
				if ref == nil {
					return domain.ErrNotFound
				}
			}
			name, batch, category, imagePath = ref.ProductName, ref.Batch, ref.Category, ref.ImagePath
		}

		if existing != nil {
			existing.Quantity += input.Quantity
			existing.ProductName = name
			existing.Batch = batch
			existing.Category = category
			existing.ImagePath = imagePath
			existing.ExpiresAt = expiresAt.Unix()
			existing.ExpiresText = expiresText
			if err := stockRepo.Update(existing); err != nil {
				return err
			}
			item = existing
		} else {
			item = &entity.StockItem{
				Barcode:     input.Barcode,
				Batch:       batch,
				ExpiresAt:   expiresAt.Unix(),
				ExpiresText: expiresText,
				ProductName: name,
				Quantity:    input.Quantity,
				ImagePath:   imagePath,
				Category:    category,
			}
			if err := stockRepo.Create(item); err != nil {
				return err
			}
		}

		mov = &entity.Movement{
			ProductID: item.ID,
			Barcode:   item.Barcode,
			Name:      item.ProductName,
			Action:    entity.ActionIntake,
			Quantity:  input.Quantity,
			Reason:    input.Note,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, nil, err
	}
	return item, mov, nil
}

// Withdraw retira a quantidade do item, valida contra o disponível e registra
// a movimentação de saída. Linhas zeradas são removidas na mesma transação.
// Em caso de estoque insuficiente nada é alterado.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, stockItemID int64, quantity int, reason string) (*entity.StockItem, *entity.Movement, error) {
	if quantity <= 0 {
		return nil, nil, domain.ErrInvalidQuantity
	}

	var item *entity.StockItem
	var mov *entity.Movement

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		existing, err := stockRepo.GetByIDForUpdate(stockItemID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if quantity > existing.Quantity {
			return domain.ErrInsufficientStock
		}

		existing.Quantity -= quantity
		if err := stockRepo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
			return err
		}

		mov = &entity.Movement{
			ProductID: existing.ID,
			Barcode:   existing.Barcode,
			Name:      existing.ProductName,
			Action:    entity.ActionWithdraw,
			Quantity:  quantity,
			Reason:    reason,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		// Limpa itens zerados na mesma transação: a linha exaurida nunca fica
		// visível depois do commit.
		if _, err := stockRepo.DeleteExhausted(); err != nil {
			return err
		}
		item = existing
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return item, mov, nil
}

// AdjustByOne soma 1 unidade ao item pelo caminho de entrada, sem tocar nos
// metadados. Decrementos são rejeitados nesta camada: baixas exigem motivo e
// passam por Withdraw.
func (uc *LedgerUseCase) AdjustByOne(ctx context.Context, stockItemID int64, increment bool) (*entity.StockItem, error) {
	if !increment {
		return nil, domain.ErrInvalidQuantity
	}

	var item *entity.StockItem
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		existing, err := stockRepo.GetByIDForUpdate(stockItemID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		existing.Quantity++
		if err := stockRepo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
			return err
		}
		item = existing
		return movRepo.Create(&entity.Movement{
			ProductID: existing.ID,
			Barcode:   existing.Barcode,
			Name:      existing.ProductName,
			Action:    entity.ActionIntake,
			Quantity:  1,
			Reason:    quickAdjustReason,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// SweepExhausted remove todas as linhas com quantidade <= 0 e devolve o total
// removido. Idempotente: sem nada a remover, devolve 0 e não altera nada.
func (uc *LedgerUseCase) SweepExhausted(ctx context.Context) (int64, error) {
	var count int64
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.MovementRepository,
	) error {
		var err error
		count, err = stockRepo.DeleteExhausted()
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// midnight normaliza um instante para a meia-noite do dia, na mesma localização.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
