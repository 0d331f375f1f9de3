package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"calc-golang/internal/storage"
)

type MetricsProvider interface {
	MetricsForSession(ctx context.Context, sessionID string) (*storage.CalculatedMetrics, *storage.CalculatorSession, error)
}

type GenerateExcelService struct {
	metrics MetricsProvider
}

func NewGenerateService(metrics MetricsProvider) *GenerateExcelService {
	return &GenerateExcelService{metrics: metrics}
}

// GenerateExcel renders the metrics snapshot of one session as a workbook:
// a per-product P&L sheet and a totals block underneath.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, sessionID string) ([]byte, error) {
	metrics, session, err := g.metrics.MetricsForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("fetch metrics: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Business Metrics"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{
		"Product", "Price", "Units/mo", "Material", "Machine", "Labor", "Fees",
		"Total cost", "Unit profit", "Margin %", "Monthly profit", "Hours/mo", "Eff. rate",
	}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	row := 2
	for _, p := range metrics.Products {
		values := []interface{}{
			p.Name,
			p.SellingPrice,
			p.MonthlyUnits,
			p.MaterialCost,
			p.MachineCost,
			p.LaborCost,
			p.PlatformFeeCost,
			p.TotalCosts,
			p.UnitProfit,
			p.Margin * 100,
			p.MonthlyProfit,
			p.MonthlyTimeHours,
			p.EffectiveHourlyRate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	totals := [][2]interface{}{
		{"Session", session.Name},
		{"Total units/mo", metrics.TotalMonthlyUnits},
		{"Total hours/mo", metrics.TotalMonthlyHours},
		{"Revenue/mo", metrics.TotalMonthlyRevenue},
		{"Gross profit/mo", metrics.TotalGrossProfit},
		{"OpEx labor/mo", metrics.Labor.MonthlyOpExLaborCost},
		{"Business costs/mo", metrics.MonthlyBusinessCosts},
		{"Marketing spend/mo", metrics.Marketing.TotalMonthlySpend},
		{"Net profit/mo", metrics.TotalNetProfit},
		{"Avg hourly rate", metrics.AverageHourlyRate},
		{"Blended CAC", metrics.Marketing.BlendedCAC},
		{"Goal achievement %", metrics.GoalAchievementPercentage},
	}
	for _, pair := range totals {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, labelCell, pair[0])
		f.SetCellValue(sheet, valueCell, pair[1])
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
