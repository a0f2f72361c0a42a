// Package chart renders the employee versus freelancer comparison as a
// grouped bar chart encoded as PNG.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/iwvelando/salarymoon/internal/comparison"
	"github.com/iwvelando/salarymoon/pkg/constants"
	"github.com/iwvelando/salarymoon/pkg/format"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Categories are the bar groups, in drawing order.
var Categories = []string{"Gross Income", "Net Income", "Tax Paid"}

var (
	employeeColor   = color.RGBA{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff}
	freelancerColor = color.RGBA{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff}
)

// barWidth is roughly a third of a category slot on the fixed figure size.
const barWidth = vg.Length(72)

// Renderer draws comparison charts. It holds no drawing state between calls.
type Renderer struct {
	logger *zap.Logger
	width  vg.Length
	height vg.Length
	dpi    int
}

// NewRenderer returns a Renderer using the fixed figure size and resolution.
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		logger: logger,
		width:  constants.ChartWidthInches * vg.Inch,
		height: constants.ChartHeightInches * vg.Inch,
		dpi:    constants.ChartDPI,
	}
}

// Render draws the comparison and returns it PNG-encoded.
func (r *Renderer) Render(result comparison.Result) ([]byte, error) {
	p, err := r.newPlot(result)
	if err != nil {
		return nil, err
	}

	// The canvas is local to this call and dropped on return.
	canvas := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	r.logger.Debug("chart rendered",
		zap.String("op", "chart.Render"),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

// RenderBase64 renders the chart and encodes the PNG with standard base64.
func (r *Renderer) RenderBase64(result comparison.Result) (string, error) {
	png, err := r.Render(result)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

func (r *Renderer) newPlot(result comparison.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = constants.ChartTitle
	p.Y.Label.Text = constants.ChartYAxisLabel
	p.Y.Min = 0
	p.Y.Tick.Marker = currencyTicks{}
	p.Add(plotter.NewGrid())

	employee, err := newSeries(plotter.Values{
		result.Employee.Gross, result.Employee.Net, result.Employee.TaxPaid,
	}, employeeColor, -barWidth/2)
	if err != nil {
		return nil, fmt.Errorf("failed to build employee series: %w", err)
	}

	freelancer, err := newSeries(plotter.Values{
		result.Freelancer.Gross, result.Freelancer.Net, result.Freelancer.TaxPaid,
	}, freelancerColor, barWidth/2)
	if err != nil {
		return nil, fmt.Errorf("failed to build freelancer series: %w", err)
	}

	p.Add(employee, freelancer)
	p.Legend.Add("Employee", employee)
	p.Legend.Add("Freelancer", freelancer)
	p.Legend.Top = true
	p.NominalX(Categories...)

	return p, nil
}

func newSeries(values plotter.Values, c color.Color, offset vg.Length) (*plotter.BarChart, error) {
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, err
	}
	bars.Color = c
	bars.LineStyle.Width = 0
	bars.Offset = offset
	return bars, nil
}

// currencyTicks labels the default major ticks as currency.
type currencyTicks struct{}

func (currencyTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = format.Currency(ticks[i].Value)
		}
	}
	return ticks
}
