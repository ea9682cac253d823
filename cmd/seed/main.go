// seed popula o banco com itens de estoque e movimentações de exemplo
// para demonstração e desenvolvimento local.
//
// Uso: go run ./cmd/seed
// Lê a mesma configuração da API (DATABASE_URL etc.). Idempotente por
// chave natural: rodar duas vezes apenas soma quantidades.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/application/inventory"
	"github.com/bancodealimentos/estoque-api/internal/infrastructure/postgres"
	"github.com/bancodealimentos/estoque-api/pkg/config"
)

type sample struct {
	barcode  string
	name     string
	batch    string
	category int
	daysOut  int // validade em dias a partir de hoje (negativo = vencido)
	quantity int
}

var samples = []sample{
	{"7891000100103", "Arroz Branco Tipo 1 5kg", "L2025-041", 1, 120, 48},
	{"7891000100103", "Arroz Branco Tipo 1 5kg", "L2025-052", 1, 200, 30},
	{"7896004400014", "Feijão Carioca 1kg", "L2025-033", 1, 90, 60},
	{"7891910000197", "Açúcar Refinado 1kg", "L2025-019", 1, 300, 25},
	{"7896036090244", "Óleo de Soja 900ml", "L2025-027", 3, 240, 36},
	{"7891991010856", "Molho de Tomate 340g", "L2025-008", 2, 45, 80},
	{"7896102500417", "Sardinha em Lata 125g", "L2024-115", 2, 10, 24},
	{"7891000053508", "Leite em Pó Integral 400g", "L2025-061", 9, 150, 40},
	{"7896213004568", "Macarrão Espaguete 500g", "L2025-044", 4, 180, 100},
	{"7891150054603", "Sabonete 90g", "L2025-003", 7, 365, 72},
	{"7891035617645", "Água Sanitária 1L", "L2025-012", 8, 400, 30},
	{"7894900011517", "Suco de Uva Integral 1L", "L2025-050", 5, 60, 18},
	{"7896102500417", "Sardinha em Lata 125g", "L2025-021", 2, 75, 48},
	{"7891962014606", "Biscoito Maisena 400g", "L2025-037", 6, 5, 12},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migração do esquema: %v\n", err)
		os.Exit(1)
	}

	ledger := inventory.NewLedgerUseCase(postgres.NewTxRunner(pool))
	now := time.Now()

	for _, s := range samples {
		item, _, err := ledger.RegisterIntake(ctx, inventory.IntakeInput{
			Barcode:     s.barcode,
			ExpiresAt:   now.AddDate(0, 0, s.daysOut),
			ProductName: s.name,
			Batch:       s.batch,
			Category:    s.category,
			Quantity:    s.quantity,
			Note:        "Carga inicial de demonstração",
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "entrada %s: %v\n", s.name, err)
			os.Exit(1)
		}
		fmt.Printf("ok  %-35s validade %s  qtde %d\n", item.ProductName, item.ExpiresText, item.Quantity)
	}

	fmt.Printf("%d entradas registradas\n", len(samples))
}
