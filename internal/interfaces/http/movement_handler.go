package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/internal/application/dto"
	"github.com/bancodealimentos/estoque-api/internal/application/inventory"
	"github.com/bancodealimentos/estoque-api/internal/application/report"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

const defaultMovementsPerPage = 50

// MovementHandler endpoints do histórico de movimentações (protegido).
type MovementHandler struct {
	query    *inventory.QueryUseCase
	exporter *report.ExcelExporter
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(query *inventory.QueryUseCase, exporter *report.ExcelExporter) *MovementHandler {
	return &MovementHandler{query: query, exporter: exporter}
}

// movementFilter monta o filtro de repositório a partir dos query params.
func movementFilter(q dto.MovementQuery, now time.Time) (repository.MovementFilter, inventory.PeriodRange, error) {
	period, err := inventory.ResolvePeriod(q.Period, q.From, q.To, now)
	if err != nil {
		return repository.MovementFilter{}, inventory.PeriodRange{}, err
	}
	return repository.MovementFilter{
		Action: q.Action,
		Search: q.Search,
		From:   period.From,
		To:     period.To,
	}, period, nil
}

// List godoc
// @Summary      Histórico de movimentações paginado
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "Página (1-based)"
// @Param        acao     query  string  false  "entrada ou retirada"
// @Param        busca    query  string  false  "Busca por nome ou código de barras"
// @Param        periodo  query  string  false  "today, week, month, current_month, last_month, year, custom, all"
// @Param        de       query  string  false  "Data inicial ISO (periodo=custom)"
// @Param        ate      query  string  false  "Data final ISO (periodo=custom)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/movimentacoes [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	q.DefaultPage(defaultMovementsPerPage)

	filter, period, err := movementFilter(q, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	movs, page := h.query.ListMovements(c.Context(), filter, q.Page, q.PerPage)
	return c.JSON(fiber.Map{"items": movs, "pagination": page, "periodo": period.Label})
}

// Export gera a planilha XLSX do histórico filtrado pelo período.
// GET /api/movimentacoes/export
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	filter, period, err := movementFilter(q, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	data, err := h.exporter.Export(c.Context(), filter, period.Label)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, report.Filename(period.Slug)))
	return c.Send(data)
}
