package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/internal/application/dto"
	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

// ResponsibleHandler cadastro de responsáveis por retiradas (protegido).
type ResponsibleHandler struct {
	repo repository.ResponsibleRepository
}

// NewResponsibleHandler constrói o handler.
func NewResponsibleHandler(repo repository.ResponsibleRepository) *ResponsibleHandler {
	return &ResponsibleHandler{repo: repo}
}

// List devolve todos os responsáveis ordenados por nome.
// GET /api/responsaveis
func (h *ResponsibleHandler) List(c *fiber.Ctx) error {
	items, err := h.repo.List()
	if err != nil {
		return domainError(c, err)
	}
	if items == nil {
		items = []*entity.Responsible{}
	}
	return c.JSON(fiber.Map{"items": items})
}

// Create cadastra um responsável. Nome duplicado devolve 409.
// POST /api/responsaveis
func (h *ResponsibleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResponsibleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domainError(c, domain.ErrValidation)
	}
	r := &entity.Responsible{Name: name}
	if err := h.repo.Create(r); err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// Delete remove um responsável pelo id.
// DELETE /api/responsaveis/:id
func (h *ResponsibleHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return domainError(c, domain.ErrValidation)
	}
	if err := h.repo.Delete(int64(id)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "responsável removido"})
}
