package entity

import "time"

// Status de validade de um item em estoque, calculado para exibição.
const (
	ExpiryExpired  = "vencido"       // validade já passou
	ExpiryUrgent   = "vence_urgente" // vence em menos de 7 dias
	ExpirySoon     = "vence_proximo" // vence em menos de 15 dias
	ExpiryOK       = "ok"
	lowStockCutoff = 5
)

// StockItem representa uma linha viva do estoque: um par (código de barras, validade)
// com sua quantidade atual. A chave natural é aplicada pela lógica da aplicação,
// não por constraint no banco.
type StockItem struct {
	ID          int64  `json:"id"`
	Barcode     string `json:"codigo_de_barras"`
	Batch       string `json:"lote"`
	ExpiresAt   int64  `json:"validade_int"`  // epoch seconds, usado para ordenação e comparação
	ExpiresText string `json:"validade_text"` // DD/MM/YYYY, usado para exibição
	ProductName string `json:"produto_nome"`
	Quantity    int    `json:"quantidade"`
	ImagePath   string `json:"image_path,omitempty"`
	Category    int    `json:"categoria"`
}

// ExpiryStatus classifica a validade do item em relação à data de referência.
func (s *StockItem) ExpiryStatus(today time.Time) string {
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	switch {
	case s.ExpiresAt < midnight.Unix():
		return ExpiryExpired
	case s.ExpiresAt < midnight.AddDate(0, 0, 7).Unix():
		return ExpiryUrgent
	case s.ExpiresAt < midnight.AddDate(0, 0, 15).Unix():
		return ExpirySoon
	default:
		return ExpiryOK
	}
}

// LowStock indica se o item está com quantidade baixa (<= 5 unidades).
func (s *StockItem) LowStock() bool {
	return s.Quantity <= lowStockCutoff
}
