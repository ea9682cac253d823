package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/internal/application/dto"
	"github.com/bancodealimentos/estoque-api/internal/application/inventory"
	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

const defaultStockPerPage = 24

// StockHandler endpoints do estoque (protegido).
type StockHandler struct {
	ledger *inventory.LedgerUseCase
	query  *inventory.QueryUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(ledger *inventory.LedgerUseCase, query *inventory.QueryUseCase) *StockHandler {
	return &StockHandler{ledger: ledger, query: query}
}

// List godoc
// @Summary      Listar estoque paginado
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página (1-based, grampeada no intervalo válido)"
// @Param        categoria query  int     false  "Filtro por categoria"
// @Param        busca     query  string  false  "Busca por nome do produto"
// @Param        ordenar   query  string  false  "validade (padrão), nome ou quantidade"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/estoque [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var q dto.StockQuery
	if err := c.QueryParser(&q); err != nil {
		return domainError(c, domain.ErrValidation)
	}
	q.DefaultPage(defaultStockPerPage)

	filter := repository.StockFilter{
		Category: q.Category,
		Search:   q.Search,
		Sort:     repository.ParseSortKey(q.Sort),
	}
	items, page := h.query.ListStock(c.Context(), filter, q.Page, q.PerPage)
	return c.JSON(fiber.Map{"items": items, "pagination": page})
}

// ByBarcode devolve todas as linhas de um código de barras, validade ascendente.
// GET /api/estoque/codigo/:codigo
func (h *StockHandler) ByBarcode(c *fiber.Ctx) error {
	items := h.query.ListByBarcode(c.Context(), c.Params("codigo"))
	return c.JSON(fiber.Map{"items": items})
}

// Intake godoc
// @Summary      Registrar entrada de estoque
// @Description  Soma à linha (código de barras, validade) existente ou cria uma nova.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IntakeRequest  true  "dados da entrada"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque [post]
func (h *StockHandler) Intake(c *fiber.Ctx) error {
	var in dto.IntakeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	expiresAt, err := dto.ParseExpiry(in.ExpiresAt)
	if err != nil {
		return domainError(c, err)
	}
	item, mov, err := h.ledger.RegisterIntake(c.Context(), inventory.IntakeInput{
		Barcode:     in.Barcode,
		ExpiresAt:   expiresAt,
		ProductName: in.ProductName,
		Batch:       in.Batch,
		Category:    in.Category,
		ImagePath:   in.ImagePath,
		Quantity:    in.Quantity,
		Note:        in.Note,
		QuickMode:   in.QuickMode,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item, "movement": mov})
}

// Withdraw registra uma baixa validada contra o disponível.
// POST /api/estoque/:id/retirada
func (h *StockHandler) Withdraw(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return domainError(c, domain.ErrValidation)
	}
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, mov, err := h.ledger.Withdraw(c.Context(), int64(id), in.Quantity, in.Responsible)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"item": item, "movement": mov})
}

// Adjust incremento rápido de uma unidade. Decrementos passam pela retirada.
// POST /api/estoque/:id/ajuste
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return domainError(c, domain.ErrValidation)
	}
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.ledger.AdjustByOne(c.Context(), int64(id), in.Delta > 0)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"item": item})
}

// Sweep remove as linhas com quantidade zerada ou negativa.
// POST /api/estoque/limpeza
func (h *StockHandler) Sweep(c *fiber.Ctx) error {
	removed, err := h.ledger.SweepExhausted(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.SweepResponse{Removed: removed})
}
