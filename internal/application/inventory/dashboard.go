package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
	"github.com/bancodealimentos/estoque-api/pkg/logger"
)

const lowStockThreshold = 5

// DashboardStats números do painel inicial.
type DashboardStats struct {
	TotalUnits    int    `json:"total_unidades"`
	LowStockCount int    `json:"itens_estoque_baixo"`
	NextExpiry    string `json:"proxima_validade"`
	MovementsNow  int    `json:"movimentacoes_hoje"`
	Categories    []int  `json:"categorias"`
}

// DashboardUseCase agrega as métricas exibidas na tela inicial. Cada métrica
// degrada de forma independente: falha em uma consulta não derruba o painel.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewDashboardUseCase constrói o caso de uso do painel.
func NewDashboardUseCase(statsRepo repository.StatsRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo, log: log, now: time.Now}
}

// Stats calcula os números do painel em relação a hoje. A categoria 5 (doações)
// aparece sempre na lista de filtros, mesmo sem itens no estoque.
func (uc *DashboardUseCase) Stats(ctx context.Context) DashboardStats {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats DashboardStats

	if v, err := uc.statsRepo.TotalUnits(ctx); err != nil {
		uc.log.Error().Err(err).Msg("total de unidades indisponível")
	} else {
		stats.TotalUnits = v
	}

	if v, err := uc.statsRepo.LowStockCount(ctx, lowStockThreshold); err != nil {
		uc.log.Error().Err(err).Msg("contagem de estoque baixo indisponível")
	} else {
		stats.LowStockCount = v
	}

	if v, err := uc.statsRepo.NextExpiry(ctx, today.Unix()); err != nil {
		uc.log.Error().Err(err).Msg("próxima validade indisponível")
	} else {
		stats.NextExpiry = v
	}

	if v, err := uc.statsRepo.MovementsOn(ctx, today); err != nil {
		uc.log.Error().Err(err).Msg("movimentações de hoje indisponíveis")
	} else {
		stats.MovementsNow = v
	}

	cats, err := uc.statsRepo.Categories(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("categorias indisponíveis")
		cats = nil
	}
	stats.Categories = withDonationCategory(cats)

	return stats
}

// withDonationCategory garante a presença da categoria 5 e ordena o resultado.
func withDonationCategory(cats []int) []int {
	const donationCategory = 5
	seen := make(map[int]bool, len(cats)+1)
	out := make([]int, 0, len(cats)+1)
	for _, c := range cats {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	if !seen[donationCategory] {
		out = append(out, donationCategory)
	}
	sort.Ints(out)
	return out
}
