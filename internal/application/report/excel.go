// Package report gera a exportação do histórico de movimentações em XLSX.
package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bancodealimentos/estoque-api/internal/domain/entity"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

const maxSheetName = 31 // limite do formato xlsx

var headerTitles = []string{"Data/Hora", "Código de Barras", "Produto", "Ação", "Quantidade", "Responsável"}

var columnWidths = []float64{20, 18, 35, 12, 12, 40}

// ExcelExporter monta a planilha do histórico filtrado por período.
type ExcelExporter struct {
	movRepo repository.MovementRepository
}

// NewExcelExporter constrói o exportador.
func NewExcelExporter(movRepo repository.MovementRepository) *ExcelExporter {
	return &ExcelExporter{movRepo: movRepo}
}

// Export gera o arquivo XLSX com todas as movimentações que casam com o filtro.
// periodLabel vira o nome da aba; o chamador define o nome do arquivo.
func (e *ExcelExporter) Export(ctx context.Context, filter repository.MovementFilter, periodLabel string) ([]byte, error) {
	movs, err := e.movRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("carregar movimentações para exportação: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(periodLabel)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("nomear aba: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4D7033"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo do cabeçalho: %w", err)
	}
	intakeStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "006400"}})
	if err != nil {
		return nil, fmt.Errorf("estilo de entrada: %w", err)
	}
	withdrawStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "8B0000"}})
	if err != nil {
		return nil, fmt.Errorf("estilo de retirada: %w", err)
	}

	for i, title := range headerTitles {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("escrever cabeçalho: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("aplicar estilo do cabeçalho: %w", err)
	}
	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("largura da coluna %s: %w", col, err)
		}
	}

	for i, m := range movs {
		row := i + 2
		values := []any{
			m.Timestamp.Format("02/01/2006 15:04"),
			m.Barcode,
			m.Name,
			actionLabel(m.Action),
			m.Quantity,
			m.Reason,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("escrever linha %d: %w", row, err)
			}
		}
		actionCell, _ := excelize.CoordinatesToCellName(4, row)
		style := withdrawStyle
		if m.Action == entity.ActionIntake {
			style = intakeStyle
		}
		if err := f.SetCellStyle(sheet, actionCell, actionCell, style); err != nil {
			return nil, fmt.Errorf("estilo da linha %d: %w", row, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename nome sugerido para o download, ex.: historico_mes_atual.xlsx.
func Filename(periodSlug string) string {
	if periodSlug == "" {
		periodSlug = "todo_o_periodo"
	}
	return fmt.Sprintf("historico_%s.xlsx", periodSlug)
}

func actionLabel(action string) string {
	switch action {
	case entity.ActionIntake:
		return "Entrada"
	case entity.ActionWithdraw:
		return "Retirada"
	default:
		return action
	}
}

func sheetName(label string) string {
	// O formato xlsx proíbe : \ / ? * [ ] em nomes de aba.
	name := "Histórico " + strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, label)
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}
