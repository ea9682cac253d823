package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/pkg/i18n"
)

// Translations devolve o dicionário completo no idioma da requisição.
// GET /api/translations
func Translations(c *fiber.Ctx) error {
	lang := GetLang(c)
	return c.JSON(fiber.Map{"lang": lang, "translations": i18n.All(lang)})
}
