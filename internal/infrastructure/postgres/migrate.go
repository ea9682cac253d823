package postgres

import (
	"context"
	"fmt"
)

// Nota: movimentacao não tem foreign key para estoque de propósito — o histórico
// precisa sobreviver à remoção das linhas zeradas pelo sweep.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS estoque (
		id               BIGSERIAL PRIMARY KEY,
		codigo_de_barras TEXT    NOT NULL,
		lote             TEXT    NOT NULL DEFAULT '',
		validade_int     BIGINT  NOT NULL,
		validade_text    TEXT    NOT NULL,
		produto_nome     TEXT    NOT NULL,
		quantidade       INTEGER NOT NULL DEFAULT 0,
		image_path       TEXT,
		categoria        INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_estoque_chave_natural ON estoque (codigo_de_barras, validade_int)`,
	`CREATE TABLE IF NOT EXISTS movimentacao (
		id              BIGSERIAL PRIMARY KEY,
		product_id      BIGINT  NOT NULL,
		product_barcode TEXT    NOT NULL,
		name            TEXT    NOT NULL,
		action          TEXT    NOT NULL,
		quantidade      INTEGER NOT NULL,
		motivo          TEXT,
		timestamp       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movimentacao_timestamp ON movimentacao (timestamp DESC)`,
	`CREATE TABLE IF NOT EXISTS responsaveis (
		id        BIGSERIAL PRIMARY KEY,
		nome      TEXT NOT NULL UNIQUE,
		criado_em TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		criado_em     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Responsáveis padrão, inseridos quando a tabela está vazia.
var defaultResponsibles = []string{
	"Equipe de Distribuição",
	"Coordenação",
	"Voluntários",
}

// Migrate cria as tabelas da aplicação e insere os responsáveis padrão.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM responsaveis`).Scan(&count); err != nil {
		return fmt.Errorf("migrate: contar responsaveis: %w", err)
	}
	if count == 0 {
		for _, nome := range defaultResponsibles {
			if _, err := q.Exec(ctx, `INSERT INTO responsaveis (nome) VALUES ($1) ON CONFLICT DO NOTHING`, nome); err != nil {
				return fmt.Errorf("migrate: seed responsaveis: %w", err)
			}
		}
	}
	return nil
}
