package http

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bancodealimentos/estoque-api/internal/application/dto"
	"github.com/bancodealimentos/estoque-api/internal/domain"
)

// Extensões de imagem aceitas no upload.
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadHandler upload de fotos de produtos (protegido).
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler constrói o handler. uploadDir deve existir.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// Upload grava a imagem enviada com nome aleatório e devolve o caminho
// público para gravar no item de estoque.
// POST /api/uploads (multipart, campo "imagem")
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("imagem")
	if err != nil {
		return domainError(c, domain.ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "formato de imagem não suportado"})
	}
	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao gravar imagem"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"image_path": fmt.Sprintf("/static/img/%s", name)})
}
