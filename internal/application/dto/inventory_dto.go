package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/domain"
)

// IntakeRequest body para POST /api/estoque.
type IntakeRequest struct {
	Barcode     string `json:"codigo_de_barras" form:"codigo_de_barras"`
	ExpiresAt   string `json:"validade" form:"validade"` // 02/01/2006 ou 2006-01-02
	ProductName string `json:"produto_nome" form:"produto_nome"`
	Batch       string `json:"lote" form:"lote"`
	Category    int    `json:"categoria" form:"categoria"`
	ImagePath   string `json:"image_path" form:"image_path"`
	Quantity    int    `json:"quantidade" form:"quantidade"`
	Note        string `json:"observacao" form:"observacao"`
	QuickMode   bool   `json:"modo_rapido" form:"modo_rapido"`
}

// WithdrawRequest body para POST /api/estoque/:id/retirada.
type WithdrawRequest struct {
	Quantity    int    `json:"quantidade" form:"quantidade"`
	Responsible string `json:"responsavel" form:"responsavel"`
}

// AdjustRequest body para POST /api/estoque/:id/ajuste.
type AdjustRequest struct {
	Delta int `json:"delta" form:"delta"`
}

// StockQuery filtros para GET /api/estoque.
type StockQuery struct {
	PageRequest
	Category *int   `query:"categoria"`
	Search   string `query:"busca"`
	Sort     string `query:"ordenar"`
}

// MovementQuery filtros para GET /api/movimentacoes e para a exportação.
type MovementQuery struct {
	PageRequest
	Action string `query:"acao"`
	Search string `query:"busca"`
	Period string `query:"periodo"`
	From   string `query:"de"`
	To     string `query:"ate"`
}

// CreateResponsibleRequest body para POST /api/responsaveis.
type CreateResponsibleRequest struct {
	Name string `json:"nome" form:"nome"`
}

// SweepResponse resultado de POST /api/estoque/limpeza.
type SweepResponse struct {
	Removed int64 `json:"removidos"`
}

// ParseExpiry aceita a data de validade em formato de exibição (02/01/2006)
// ou ISO (2006-01-02).
func ParseExpiry(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("validade obrigatória: %w", domain.ErrValidation)
	}
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("validade %q fora do formato esperado: %w", raw, domain.ErrValidation)
}
