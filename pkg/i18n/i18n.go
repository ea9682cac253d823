package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Lang código de idioma suportado pela aplicação.
type Lang string

const (
	LangPT Lang = "pt" // português (padrão)
	LangES Lang = "es" // espanhol
)

// matcher negocia o idioma a partir do Accept-Language do cliente.
var matcher = language.NewMatcher([]language.Tag{
	language.BrazilianPortuguese, // pt-BR primeiro: idioma padrão
	language.Portuguese,
	language.Spanish,
	language.LatinAmericanSpanish,
})

// Match resolve o idioma da requisição: valor explícito (?lang= ou X-Lang)
// tem prioridade; senão negocia pelo cabeçalho Accept-Language.
func Match(explicit, acceptLanguage string) Lang {
	switch explicit {
	case "pt", "es":
		return Lang(explicit)
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == "es" {
		return LangES
	}
	return LangPT
}

// Translate devolve o rótulo da chave no idioma pedido.
// Cai para português e, em último caso, para a própria chave.
func Translate(key string, lang Lang) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if s, ok := entry[lang]; ok && s != "" {
		return s
	}
	return entry[LangPT]
}

// CategoryLabel devolve o rótulo traduzido de uma categoria de produto.
func CategoryLabel(id int, lang Lang) string {
	return Translate(fmt.Sprintf("category_%d", id), lang)
}

// All devolve todas as traduções de um idioma (para consumo do front-end).
func All(lang Lang) map[string]string {
	out := make(map[string]string, len(translations))
	for key := range translations {
		out[key] = Translate(key, lang)
	}
	return out
}

// Dicionário PT-BR / ES da aplicação (subconjunto servido pela API).
var translations = map[string]map[Lang]string{
	// Login
	"login_title": {LangPT: "Sistema de Controle de Estoque", LangES: "Sistema de Control de Inventario"},
	"login_error": {LangPT: "Usuário ou senha incorretos", LangES: "Usuario o contraseña incorrectos"},

	// Estatísticas
	"total_products":  {LangPT: "Total de Produtos", LangES: "Total de Productos"},
	"total_stock":     {LangPT: "Total em Estoque", LangES: "Total en Inventario"},
	"low_products":    {LangPT: "Produtos Baixos", LangES: "Productos Bajos"},
	"next_expiry":     {LangPT: "Próx. Vencimento", LangES: "Próx. Vencimiento"},
	"movements_today": {LangPT: "Movimentações Hoje", LangES: "Movimientos Hoy"},

	// Categorias
	"category_1": {LangPT: "Grãos e Cereais", LangES: "Granos y Cereales"},
	"category_2": {LangPT: "Conservas", LangES: "Conservas"},
	"category_3": {LangPT: "Óleos e Condimentos", LangES: "Aceites y Condimentos"},
	"category_4": {LangPT: "Massas e Farináceos", LangES: "Pastas y Harinas"},
	"category_5": {LangPT: "Bebidas", LangES: "Bebidas"},
	"category_6": {LangPT: "Confeitaria", LangES: "Confitería"},
	"category_7": {LangPT: "Higiene Pessoal", LangES: "Higiene Personal"},
	"category_8": {LangPT: "Produtos de Limpeza", LangES: "Productos de Limpieza"},
	"category_9": {LangPT: "Diversos", LangES: "Varios"},

	// Movimentações
	"withdraw":        {LangPT: "Retirar", LangES: "Retirar"},
	"withdraw_reason": {LangPT: "Justificativa da Baixa", LangES: "Justificación de la Baja"},
	"units":           {LangPT: "unidades", LangES: "unidades"},

	// Erros
	"insufficient_stock": {LangPT: "Estoque insuficiente", LangES: "Stock insuficiente"},
	"product_not_found":  {LangPT: "Produto não encontrado", LangES: "Producto no encontrado"},
	"invalid_quantity":   {LangPT: "A quantidade deve ser um número positivo", LangES: "La cantidad debe ser un número positivo"},
	"invalid_date":       {LangPT: "Data de validade inválida", LangES: "Fecha de vencimiento inválida"},
	"invalid_input":      {LangPT: "Dados inválidos", LangES: "Datos inválidos"},
	"duplicate_name":     {LangPT: "Nome já cadastrado", LangES: "Nombre ya registrado"},
	"reason_required":    {LangPT: "Motivo é obrigatório", LangES: "El motivo es obligatorio"},
	"internal_error":     {LangPT: "Erro interno do servidor", LangES: "Error interno del servidor"},
	"unauthorized":       {LangPT: "Não autorizado", LangES: "No autorizado"},

	// Genéricos
	"success": {LangPT: "Sucesso!", LangES: "¡Éxito!"},
	"error":   {LangPT: "Erro", LangES: "Error"},
}
