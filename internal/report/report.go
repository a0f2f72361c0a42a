// Package report renders a comparison and its chart into a one-page PDF.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/iwvelando/salarymoon/internal/chart"
	"github.com/iwvelando/salarymoon/internal/comparison"
	"github.com/iwvelando/salarymoon/pkg/constants"
	"github.com/iwvelando/salarymoon/pkg/format"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

const chartImageName = "comparison-chart"

// Generator builds PDF reports.
type Generator struct {
	logger *zap.Logger
	charts *chart.Renderer
}

// NewGenerator returns a Generator that draws its chart with charts.
func NewGenerator(logger *zap.Logger, charts *chart.Renderer) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if charts == nil {
		charts = chart.NewRenderer(logger)
	}
	return &Generator{logger: logger, charts: charts}
}

// Write renders the report for result to w.
func (g *Generator) Write(w io.Writer, result comparison.Result) error {
	png, err := g.charts.Render(result)
	if err != nil {
		return fmt.Errorf("failed to render report chart: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(constants.ChartTitle, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, constants.ChartTitle)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Jurisdiction: %s", result.Jurisdiction))
	pdf.Ln(10)

	writeTable(pdf, result)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, result.Summary(), "", "L", false)
	pdf.Ln(4)

	pdf.RegisterImageOptionsReader(chartImageName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(chartImageName, pdf.GetX(), pdf.GetY(), 180, 0, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	g.logger.Debug("report generated",
		zap.String("op", "report.Write"),
		zap.String("jurisdiction", result.Jurisdiction),
	)
	return nil
}

func writeTable(pdf *gofpdf.Fpdf, result comparison.Result) {
	const labelWidth, valueWidth, rowHeight = 90.0, 45.0, 8.0

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(labelWidth, rowHeight, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueWidth, rowHeight, "Employee", "1", 0, "R", true, 0, "")
	pdf.CellFormat(valueWidth, rowHeight, "Freelancer", "1", 1, "R", true, 0, "")

	rows := [][3]string{
		{"Gross Income", format.Currency(result.Employee.Gross), format.Currency(result.Freelancer.Gross)},
		{"Tax Rate", format.Percent(result.Employee.TaxRate), format.Percent(result.Freelancer.TaxRate)},
		{"Tax Paid", format.Currency(result.Employee.TaxPaid), format.Currency(result.Freelancer.TaxPaid)},
		{"Net Income", format.Currency(result.Employee.Net), format.Currency(result.Freelancer.Net)},
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(labelWidth, rowHeight, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidth, rowHeight, row[1], "1", 0, "R", false, 0, "")
		pdf.CellFormat(valueWidth, rowHeight, row[2], "1", 1, "R", false, 0, "")
	}

	pdf.CellFormat(labelWidth, rowHeight, "Required Hours to Match Employee Net Income", "1", 0, "L", false, 0, "")
	pdf.CellFormat(2*valueWidth, rowHeight, format.Hours(result.RequiredFreelanceHours)+" hours", "1", 1, "R", false, 0, "")
}
