package inventory

import (
	"fmt"
	"time"

	"github.com/bancodealimentos/estoque-api/internal/domain"
)

// Presets de período aceitos pelo histórico e pela exportação.
const (
	PeriodToday        = "today"
	PeriodWeek         = "week"
	PeriodMonth        = "month"
	PeriodCurrentMonth = "current_month"
	PeriodLastMonth    = "last_month"
	PeriodYear         = "year"
	PeriodCustom       = "custom"
	PeriodAll          = "all"
)

// PeriodRange intervalo resolvido a partir de um preset. From/To nil significam
// intervalo aberto daquele lado. Label é o texto de exibição; Slug entra no
// nome do arquivo exportado.
type PeriodRange struct {
	From  *time.Time
	To    *time.Time
	Label string
	Slug  string
}

// ResolvePeriod traduz um preset em intervalo de datas relativo a now.
// custom exige from e to no formato ISO (2006-01-02); preset desconhecido
// cai em all.
func ResolvePeriod(preset, fromStr, toStr string, now time.Time) (PeriodRange, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch preset {
	case PeriodToday:
		return PeriodRange{From: &day, To: &day, Label: "Hoje", Slug: "hoje"}, nil
	case PeriodWeek:
		from := day.AddDate(0, 0, -7)
		return PeriodRange{From: &from, To: &day, Label: "Últimos 7 dias", Slug: "ultimos_7_dias"}, nil
	case PeriodMonth:
		from := day.AddDate(0, 0, -30)
		return PeriodRange{From: &from, To: &day, Label: "Últimos 30 dias", Slug: "ultimos_30_dias"}, nil
	case PeriodCurrentMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return PeriodRange{From: &from, To: &day, Label: "Mês atual", Slug: "mes_atual"}, nil
	case PeriodLastMonth:
		firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from := firstOfCurrent.AddDate(0, -1, 0)
		to := firstOfCurrent.AddDate(0, 0, -1)
		return PeriodRange{From: &from, To: &to, Label: "Mês anterior", Slug: "mes_anterior"}, nil
	case PeriodYear:
		from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return PeriodRange{From: &from, To: &day, Label: "Este ano", Slug: "este_ano"}, nil
	case PeriodCustom:
		from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
		if err != nil {
			return PeriodRange{}, fmt.Errorf("data inicial inválida: %w", domain.ErrValidation)
		}
		to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
		if err != nil {
			return PeriodRange{}, fmt.Errorf("data final inválida: %w", domain.ErrValidation)
		}
		if to.Before(from) {
			return PeriodRange{}, fmt.Errorf("intervalo invertido: %w", domain.ErrValidation)
		}
		label := fmt.Sprintf("%s a %s", from.Format("02/01/2006"), to.Format("02/01/2006"))
		slug := fmt.Sprintf("%s_a_%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
		return PeriodRange{From: &from, To: &to, Label: label, Slug: slug}, nil
	case PeriodAll, "":
		return PeriodRange{Label: "Todo o período", Slug: "todo_o_periodo"}, nil
	default:
		return PeriodRange{Label: "Todo o período", Slug: "todo_o_periodo"}, nil
	}
}
