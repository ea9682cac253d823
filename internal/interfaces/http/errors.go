package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/internal/application/dto"
	"github.com/bancodealimentos/estoque-api/internal/domain"
	"github.com/bancodealimentos/estoque-api/pkg/i18n"
)

// domainError traduz erros de domínio em status HTTP + mensagem no idioma
// da requisição. Erros não mapeados viram 500 genérico.
func domainError(c *fiber.Ctx, err error) error {
	lang := GetLang(c)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: i18n.Translate("invalid_quantity", lang)})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: i18n.Translate("invalid_input", lang)})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: i18n.Translate("product_not_found", lang)})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: i18n.Translate("insufficient_stock", lang)})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: i18n.Translate("duplicate_name", lang)})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: i18n.Translate("login_error", lang)})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: i18n.Translate("internal_error", lang)})
	}
}
