package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/internal/application/inventory"
	"github.com/bancodealimentos/estoque-api/pkg/i18n"
)

// DashboardHandler painel inicial (protegido).
type DashboardHandler struct {
	uc *inventory.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *inventory.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats devolve os números do painel e os rótulos das categorias no idioma
// da requisição. Falhas parciais de leitura devolvem zeros, nunca erro.
// GET /api/dashboard
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats := h.uc.Stats(c.Context())
	lang := GetLang(c)

	labels := make(map[int]string, len(stats.Categories))
	for _, id := range stats.Categories {
		labels[id] = i18n.CategoryLabel(id, lang)
	}
	return c.JSON(fiber.Map{"stats": stats, "category_labels": labels})
}
