package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/internal/application/auth"
	"github.com/bancodealimentos/estoque-api/internal/application/dto"
)

// AuthHandler endpoints de autenticação (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "credenciais"
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	token, err := h.uc.Login(in.Username, in.Password)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, Username: in.Username})
}
