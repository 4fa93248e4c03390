// Package render draws chart data as a standalone HTML page with go-echarts.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

// ErrNoData indicates there is nothing to draw.
var ErrNoData = errors.New("no chart data")

const (
	defaultWidth  = "100%"
	defaultHeight = "500px"
	areaOpacity   = 0.3
	doughnutInner = "40%"
	doughnutOuter = "70%"
)

// Options configures the rendered page.
type Options struct {
	// Title is shown above the chart and used as the page title.
	Title string
	// Width is a CSS width; empty means responsive full width.
	Width string
	// Height is a CSS height; empty means 500px.
	Height string
}

// Renderer draws chart data.
type Renderer struct {
	opts Options
}

// New creates a renderer, filling in responsive sizing defaults.
func New(o Options) *Renderer {
	if o.Width == "" {
		o.Width = defaultWidth
	}
	if o.Height == "" {
		o.Height = defaultHeight
	}
	return &Renderer{opts: o}
}

type page interface {
	Render(w io.Writer) error
}

// Render writes data as an HTML page to w.
func (r *Renderer) Render(w io.Writer, data *models.ChartData) error {
	if data == nil || len(data.Series) == 0 {
		return ErrNoData
	}

	var p page
	switch data.Type {
	case models.ChartBar:
		p = r.bar(data)
	case models.ChartLine:
		p = r.line(data)
	case models.ChartPie, models.ChartDoughnut, models.ChartPolarArea:
		p = r.pie(data)
	case models.ChartRadar:
		p = r.radar(data)
	case models.ChartScatter, models.ChartBubble:
		p = r.scatter(data)
	default:
		return fmt.Errorf("unsupported chart type: %q", data.Type)
	}
	return p.Render(w)
}

func (r *Renderer) globals(trigger string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: r.opts.Title,
			Width:     r.opts.Width,
			Height:    r.opts.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: r.opts.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	}
}

func axisType(s models.Scale) string {
	switch s {
	case models.ScaleLinear:
		return "value"
	case models.ScaleTime:
		return "time"
	}
	return "category"
}

func (r *Renderer) bar(data *models.ChartData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(r.globals("axis")...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: data.XAxis.Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: data.YAxis.Title}),
	)

	bar.SetXAxis(data.Labels)
	for _, s := range data.Series {
		items := lo.Map(s.Values, func(v float64, _ int) opts.BarData {
			return opts.BarData{Value: v}
		})
		bar.AddSeries(s.Name, items, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}

	if data.Horizontal {
		bar.XYReversal()
	}
	return bar
}

func (r *Renderer) line(data *models.ChartData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globals("axis")...)

	xAxis := opts.XAxis{Name: data.XAxis.Title, Type: axisType(data.XAxis.Scale)}
	yAxis := opts.YAxis{Name: data.YAxis.Title, Type: axisType(data.YAxis.Scale)}
	if data.YAxis.Scale == models.ScalePoint {
		yAxis.Data = yCategories(data)
	}
	line.SetGlobalOptions(charts.WithXAxisOpts(xAxis), charts.WithYAxisOpts(yAxis))

	if !data.HasPoints() || data.XAxis.Scale == models.ScalePoint || data.XAxis.Scale == models.ScaleCategory {
		line.SetXAxis(data.Labels)
	}

	for _, s := range data.Series {
		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
		}
		if s.Fill {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(areaOpacity)}))
		}
		line.AddSeries(s.Name, lineData(s), seriesOpts...)
	}
	return line
}

func lineData(s models.Series) []opts.LineData {
	if len(s.Points) == 0 {
		return lo.Map(s.Values, func(v float64, _ int) opts.LineData {
			return opts.LineData{Value: v}
		})
	}
	return lo.Map(s.Points, func(p models.Point, _ int) opts.LineData {
		var x, y any = p.X, p.Y
		if p.XCategory != "" {
			x = p.XCategory
		}
		if p.YCategory != "" {
			y = p.YCategory
		}
		return opts.LineData{Value: []any{x, y}}
	})
}

// yCategories lists the distinct y categories of every series in first-seen order.
func yCategories(data *models.ChartData) []string {
	var cats []string
	for _, s := range data.Series {
		for _, p := range s.Points {
			cats = append(cats, p.YCategory)
		}
	}
	return lo.Uniq(cats)
}

func (r *Renderer) pie(data *models.ChartData) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(r.globals("item")...)

	s := data.Series[0]
	items := make([]opts.PieData, len(s.Values))
	for i, v := range s.Values {
		items[i] = opts.PieData{Name: data.Labels[i], Value: v}
		if i < len(s.Colors) {
			items[i].ItemStyle = &opts.ItemStyle{Color: s.Colors[i]}
		}
	}

	var chartOpts opts.PieChart
	switch data.Type {
	case models.ChartDoughnut:
		chartOpts.Radius = []string{doughnutInner, doughnutOuter}
	case models.ChartPolarArea:
		chartOpts.RoseType = "area"
	}
	pie.AddSeries(s.Name, items, charts.WithPieChartOpts(chartOpts))
	return pie
}

func (r *Renderer) radar(data *models.ChartData) *charts.Radar {
	radar := charts.NewRadar()

	limit := 0.0
	for _, s := range data.Series {
		if m := lo.Max(s.Values); m > limit {
			limit = m
		}
	}
	if limit <= 0 {
		limit = 1
	}
	indicators := lo.Map(data.Labels, func(l string, _ int) *opts.Indicator {
		return &opts.Indicator{Name: l, Max: float32(limit)}
	})

	radar.SetGlobalOptions(r.globals("item")...)
	radar.SetGlobalOptions(charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}))

	for _, s := range data.Series {
		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
		}
		if s.Fill {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(areaOpacity)}))
		}
		radar.AddSeries(s.Name, []opts.RadarData{{Name: s.Name, Value: s.Values}}, seriesOpts...)
	}
	return radar
}

func (r *Renderer) scatter(data *models.ChartData) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(r.globals("item")...)
	scatter.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: data.XAxis.Title, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: data.YAxis.Title, Type: "value"}),
	)

	for _, s := range data.Series {
		items := lo.Map(s.Points, func(p models.Point, _ int) opts.ScatterData {
			d := opts.ScatterData{Value: []float64{p.X, p.Y}}
			if data.Type == models.ChartBubble {
				// Bubble radii are in pixels; echarts sizes symbols by diameter.
				d.SymbolSize = int(math.Round(2 * p.R))
			}
			return d
		})
		scatter.AddSeries(s.Name, items, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}
	return scatter
}
