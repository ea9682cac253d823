package entity

import "time"

// Responsible é um responsável cadastrado, selecionável como justificativa de retirada.
type Responsible struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	CreatedAt time.Time `json:"criado_em"`
}
