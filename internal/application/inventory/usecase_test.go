package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bancodealimentos/estoque-api/internal/application/inventory"
	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newLedgerFixture() (*inventory.LedgerUseCase, *fakeStockRepo, *fakeMovementRepo) {
	stock := newFakeStockRepo()
	mov := newFakeMovementRepo()
	uc := inventory.NewLedgerUseCase(&fakeTxRunner{stock: stock, mov: mov})
	return uc, stock, mov
}

func makeIntake(barcode string, expiresAt time.Time, name string, qty int) inventory.IntakeInput {
	return inventory.IntakeInput{
		Barcode:     barcode,
		ExpiresAt:   expiresAt,
		ProductName: name,
		Batch:       "L001",
		Category:    1,
		Quantity:    qty,
	}
}

var (
	dezembro = time.Date(2026, 12, 15, 0, 0, 0, 0, time.Local)
	janeiro  = time.Date(2027, 1, 10, 0, 0, 0, 0, time.Local)
)

// ──────────────────────────────────────────────────────────────────────────────
// RegisterIntake
// ──────────────────────────────────────────────────────────────────────────────

// Duas entradas da mesma chave natural somam quantidades numa única linha.
func TestRegisterIntake_MesmoCodigoEValidade_SomaQuantidades(t *testing.T) {
	uc, stock, mov := newLedgerFixture()
	ctx := context.Background()

	first, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 10))
	require.NoError(t, err)

	second, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 5))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "a mesma chave natural deve reutilizar a linha")
	assert.Equal(t, 15, second.Quantity)
	assert.Len(t, stock.items, 1, "não deve criar linha duplicada")
	assert.Len(t, mov.movements, 2, "cada entrada gera sua própria movimentação")
}

// O mesmo código de barras com validades diferentes mantém linhas separadas.
func TestRegisterIntake_ValidadesDiferentes_LinhasSeparadas(t *testing.T) {
	uc, stock, _ := newLedgerFixture()
	ctx := context.Background()

	a, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 10))
	require.NoError(t, err)
	b, _, err := uc.RegisterIntake(ctx, makeIntake("789100", janeiro, "Arroz 5kg", 4))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, stock.items, 2)
	assert.Equal(t, 10, a.Quantity)
	assert.Equal(t, 4, b.Quantity)
}

// No merge os metadados descritivos seguem last-write-wins; a quantidade soma.
func TestRegisterIntake_Merge_SobrescreveMetadados(t *testing.T) {
	uc, _, _ := newLedgerFixture()
	ctx := context.Background()

	_, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz tipo 1", 10))
	require.NoError(t, err)

	in := makeIntake("789100", dezembro, "Arroz Branco Tipo 1 5kg", 5)
	in.Batch = "L099"
	in.Category = 4
	item, _, err := uc.RegisterIntake(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 15, item.Quantity)
	assert.Equal(t, "Arroz Branco Tipo 1 5kg", item.ProductName)
	assert.Equal(t, "L099", item.Batch)
	assert.Equal(t, 4, item.Category)
}

// A hora do dia não participa da chave natural: 12:30 e 08:00 do mesmo dia
// caem na mesma linha.
func TestRegisterIntake_ValidadeNormalizadaParaMeiaNoite(t *testing.T) {
	uc, stock, _ := newLedgerFixture()
	ctx := context.Background()

	meioDia := time.Date(2026, 12, 15, 12, 30, 0, 0, time.Local)
	manha := time.Date(2026, 12, 15, 8, 0, 0, 0, time.Local)

	_, _, err := uc.RegisterIntake(ctx, makeIntake("789100", meioDia, "Arroz 5kg", 3))
	require.NoError(t, err)
	item, _, err := uc.RegisterIntake(ctx, makeIntake("789100", manha, "Arroz 5kg", 2))
	require.NoError(t, err)

	assert.Len(t, stock.items, 1)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, "15/12/2026", item.ExpiresText)
}

// Modo rápido: metadados vêm da linha existente do mesmo código de barras.
func TestRegisterIntake_ModoRapido_ResolveMetadados(t *testing.T) {
	uc, _, _ := newLedgerFixture()
	ctx := context.Background()

	seed := makeIntake("789100", dezembro, "Feijão Carioca 1kg", 10)
	seed.Category = 1
	_, _, err := uc.RegisterIntake(ctx, seed)
	require.NoError(t, err)

	item, _, err := uc.RegisterIntake(ctx, inventory.IntakeInput{
		Barcode:   "789100",
		ExpiresAt: janeiro,
		Quantity:  6,
		QuickMode: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Feijão Carioca 1kg", item.ProductName, "nome deve vir da linha existente")
	assert.Equal(t, 1, item.Category)
	assert.Equal(t, 6, item.Quantity, "validade nova cria linha própria")
}

// Modo rápido sem nenhuma linha do código de barras é rejeitado.
func TestRegisterIntake_ModoRapido_CodigoDesconhecido(t *testing.T) {
	uc, stock, mov := newLedgerFixture()

	_, _, err := uc.RegisterIntake(context.Background(), inventory.IntakeInput{
		Barcode:   "000000",
		ExpiresAt: dezembro,
		Quantity:  1,
		QuickMode: true,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, stock.items)
	assert.Empty(t, mov.movements, "entrada rejeitada não pode gerar movimentação")
}

func TestRegisterIntake_QuantidadeInvalida(t *testing.T) {
	uc, _, mov := newLedgerFixture()
	ctx := context.Background()

	for _, qty := range []int{0, -3} {
		_, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz", qty))
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantidade %d deve ser rejeitada", qty)
	}
	assert.Empty(t, mov.movements)
}

func TestRegisterIntake_CamposObrigatorios(t *testing.T) {
	uc, _, _ := newLedgerFixture()
	ctx := context.Background()

	_, _, err := uc.RegisterIntake(ctx, makeIntake("", dezembro, "Arroz", 1))
	assert.ErrorIs(t, err, domain.ErrValidation, "código de barras vazio")

	semNome := makeIntake("789100", dezembro, "", 1)
	_, _, err = uc.RegisterIntake(ctx, semNome)
	assert.ErrorIs(t, err, domain.ErrValidation, "nome vazio fora do modo rápido")
}

// Cada entrada espelha exatamente uma movimentação com os dados do item.
func TestRegisterIntake_EspelhaMovimentacao(t *testing.T) {
	uc, _, mov := newLedgerFixture()

	in := makeIntake("789100", dezembro, "Arroz 5kg", 7)
	in.Note = "Doação da campanha"
	item, m, err := uc.RegisterIntake(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, mov.movements, 1)
	assert.Equal(t, entity.ActionIntake, m.Action)
	assert.Equal(t, item.ID, m.ProductID)
	assert.Equal(t, "789100", m.Barcode)
	assert.Equal(t, 7, m.Quantity)
	assert.Equal(t, "Doação da campanha", m.Reason)
	assert.NotZero(t, m.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Withdraw
// ──────────────────────────────────────────────────────────────────────────────

func TestWithdraw_ReduzQuantidadeERegistraMovimentacao(t *testing.T) {
	uc, _, mov := newLedgerFixture()
	ctx := context.Background()

	seeded, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 10))
	require.NoError(t, err)

	item, m, err := uc.Withdraw(ctx, seeded.ID, 4, "Equipe de Distribuição")
	require.NoError(t, err)

	assert.Equal(t, 6, item.Quantity)
	assert.Equal(t, entity.ActionWithdraw, m.Action)
	assert.Equal(t, 4, m.Quantity)
	assert.Equal(t, "Equipe de Distribuição", m.Reason)
	assert.Len(t, mov.movements, 2) // entrada + retirada
}

// Retirada acima do disponível: nada muda, nenhuma movimentação é gravada.
func TestWithdraw_EstoqueInsuficiente_NadaMuda(t *testing.T) {
	uc, stock, mov := newLedgerFixture()
	ctx := context.Background()

	seeded, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 3))
	require.NoError(t, err)
	movimentosAntes := len(mov.movements)

	_, _, err = uc.Withdraw(ctx, seeded.ID, 5, "Coordenação")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, err := stock.GetByID(seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, 3, after.Quantity, "a quantidade não pode mudar")
	assert.Len(t, mov.movements, movimentosAntes, "nenhuma movimentação nova")
}

// Retirada total zera a linha, que é removida na mesma operação; o histórico fica.
func TestWithdraw_RetiradaTotal_RemoveLinhaMantemHistorico(t *testing.T) {
	uc, stock, mov := newLedgerFixture()
	ctx := context.Background()

	seeded, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 5))
	require.NoError(t, err)

	_, _, err = uc.Withdraw(ctx, seeded.ID, 5, "Voluntários")
	require.NoError(t, err)

	after, err := stock.GetByID(seeded.ID)
	require.NoError(t, err)
	assert.Nil(t, after, "linha zerada deve sumir do estoque")
	assert.Len(t, mov.movements, 2, "o livro de movimentações é append-only")
}

func TestWithdraw_ItemInexistente(t *testing.T) {
	uc, _, _ := newLedgerFixture()
	_, _, err := uc.Withdraw(context.Background(), 999, 1, "Coordenação")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWithdraw_QuantidadeInvalida(t *testing.T) {
	uc, _, _ := newLedgerFixture()
	for _, qty := range []int{0, -1} {
		_, _, err := uc.Withdraw(context.Background(), 1, qty, "Coordenação")
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustByOne
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustByOne_IncrementaComMotivoPadrao(t *testing.T) {
	uc, _, mov := newLedgerFixture()
	ctx := context.Background()

	seeded, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 2))
	require.NoError(t, err)

	item, err := uc.AdjustByOne(ctx, seeded.ID, true)
	require.NoError(t, err)

	assert.Equal(t, 3, item.Quantity)
	last := mov.movements[len(mov.movements)-1]
	assert.Equal(t, entity.ActionIntake, last.Action)
	assert.Equal(t, 1, last.Quantity)
	assert.Equal(t, "Adição rápida", last.Reason)
}

// Decremento não passa por este caminho: baixas exigem justificativa.
func TestAdjustByOne_DecrementoRejeitado(t *testing.T) {
	uc, _, _ := newLedgerFixture()
	_, err := uc.AdjustByOne(context.Background(), 1, false)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// SweepExhausted
// ──────────────────────────────────────────────────────────────────────────────

func TestSweepExhausted_RemoveApenasZeradas(t *testing.T) {
	uc, stock, _ := newLedgerFixture()
	ctx := context.Background()

	a, _, err := uc.RegisterIntake(ctx, makeIntake("789100", dezembro, "Arroz 5kg", 5))
	require.NoError(t, err)
	b, _, err := uc.RegisterIntake(ctx, makeIntake("789200", janeiro, "Feijão 1kg", 2))
	require.NoError(t, err)

	// Zera uma linha por fora do caminho de retirada.
	require.NoError(t, stock.UpdateQuantity(b.ID, 0))

	removed, err := uc.SweepExhausted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	kept, err := stock.GetByID(a.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept, "linha com saldo permanece")

	// Idempotente: nova varredura não encontra nada.
	removed, err = uc.SweepExhausted(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
