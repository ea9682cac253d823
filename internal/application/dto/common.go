package dto

// PageRequest paginação para listagens. Páginas são 1-based; valores fora
// do intervalo são grampeados pelo caso de uso.
type PageRequest struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// DefaultPage aplica valores padrão quando Page/PerPage são zero.
func (p *PageRequest) DefaultPage(perPage int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = perPage
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corpo de confirmação simples.
type MessageResponse struct {
	Message string `json:"message"`
}
