package entity

import "time"

// Ações de movimentação de estoque.
const (
	ActionIntake   = "entrada"
	ActionWithdraw = "retirada"
)

// Movement é um registro imutável do livro de movimentações: cada mutação
// aceita do estoque gera exatamente um registro, na mesma transação.
// Código de barras e nome são desnormalizados para que o histórico
// sobreviva à remoção da linha de estoque.
type Movement struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Barcode   string    `json:"product_barcode"`
	Name      string    `json:"name"`
	Action    string    `json:"action"`     // entrada | retirada
	Quantity  int       `json:"quantidade"` // sempre positivo; direção implícita na ação
	Reason    string    `json:"motivo,omitempty"`
	Timestamp time.Time `json:"timestamp"` // atribuído pelo banco na escrita
}
