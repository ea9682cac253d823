package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/pkg/i18n"
)

// LocalLang chave em c.Locals com o idioma negociado da requisição.
const LocalLang = "lang"

// LangMiddleware resolve o idioma da requisição: ?lang= ou X-Lang explícitos
// têm prioridade, senão negocia pelo Accept-Language.
func LangMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		explicit := c.Query("lang")
		if explicit == "" {
			explicit = c.Get("X-Lang")
		}
		c.Locals(LocalLang, i18n.Match(explicit, c.Get("Accept-Language")))
		return c.Next()
	}
}

// GetLang devolve o idioma do contexto (após LangMiddleware).
func GetLang(c *fiber.Ctx) i18n.Lang {
	if v, ok := c.Locals(LocalLang).(i18n.Lang); ok {
		return v
	}
	return i18n.LangPT
}
