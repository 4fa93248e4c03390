package chart

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

// CountSeriesName names the series of a bar chart without y columns.
const CountSeriesName = "count"

// mapAdaptiveBar maps a bar chart whose axes follow the column types.
//
// Without y columns each distinct x value is counted. A numeric x against a
// single non-numeric y is drawn horizontally with y as the categories.
func (m *Mapper) mapAdaptiveBar(ds *models.Dataset, roles models.RoleAssignment) *models.ChartData {
	if len(roles.Y) == 0 {
		return m.mapCountBar(ds, roles)
	}

	if len(roles.Y) == 1 &&
		IsNumericColumn(ds.Column(roles.X)) &&
		!IsNumericColumn(ds.Column(roles.Y[0])) {
		keyY := roles.Y[0]
		return &models.ChartData{
			Type: models.ChartBar,
			Labels: lo.Map(ds.Rows, func(row models.Row, _ int) string {
				return Text(row[keyY])
			}),
			Series: []models.Series{{
				Name:   roles.X,
				Color:  m.colors.Next(),
				Values: columnNumbers(ds, roles.X),
			}},
			XAxis:      models.Axis{Scale: models.ScaleLinear, Title: roles.X},
			YAxis:      models.Axis{Scale: models.ScaleCategory, Title: keyY},
			Horizontal: true,
		}
	}

	return m.mapCategorical(ds, models.ChartBar, roles)
}

// mapCountBar counts rows per distinct x value in first-seen order.
func (m *Mapper) mapCountBar(ds *models.Dataset, roles models.RoleAssignment) *models.ChartData {
	var labels []string
	counts := make(map[string]int)
	for _, row := range ds.Rows {
		key := Text(row[roles.X])
		if _, ok := counts[key]; !ok {
			labels = append(labels, key)
		}
		counts[key]++
	}

	values := lo.Map(labels, func(l string, _ int) float64 {
		return float64(counts[l])
	})

	return &models.ChartData{
		Type:   models.ChartBar,
		Labels: labels,
		Series: []models.Series{{
			Name:   CountSeriesName,
			Color:  m.colors.Next(),
			Values: values,
		}},
		XAxis: models.Axis{Scale: models.ScaleCategory, Title: roles.X},
		YAxis: models.Axis{Scale: models.ScaleLinear, Title: CountSeriesName},
	}
}

// sampleValue returns the first present value of column key.
func sampleValue(ds *models.Dataset, key string) any {
	for _, row := range ds.Rows {
		v := row[key]
		if v == nil {
			continue
		}
		if str, ok := v.(string); ok && strings.TrimSpace(str) == "" {
			continue
		}
		return v
	}
	return nil
}

// lineXScale picks the x scale of an adaptive line chart from the first
// sampled x value: time for a date, linear for a number, point otherwise.
func lineXScale(ds *models.Dataset, x string) models.Scale {
	v := sampleValue(ds, x)
	if _, ok := DateValue(v); ok {
		return models.ScaleTime
	}
	if _, ok := Number(v); ok {
		return models.ScaleLinear
	}
	return models.ScalePoint
}

// lineYScale picks the y scale from the first sampled y value: linear for a
// number, point otherwise.
func lineYScale(ds *models.Dataset, y string) models.Scale {
	if _, ok := Number(sampleValue(ds, y)); ok {
		return models.ScaleLinear
	}
	return models.ScalePoint
}

// mapAdaptiveLine maps a line chart onto continuous or point axes.
//
// Each axis scale is judged from its first sampled value. On a continuous
// axis (time or linear) rows whose value does not parse are dropped, and
// points are sorted by x when x is continuous. Point axes keep row order
// and every value.
func (m *Mapper) mapAdaptiveLine(ds *models.Dataset, roles models.RoleAssignment) *models.ChartData {
	xScale := lineXScale(ds, roles.X)
	yScale := models.ScaleLinear

	series := make([]models.Series, 0, len(roles.Y))
	for _, key := range roles.Y {
		ys := lineYScale(ds, key)
		if ys == models.ScalePoint {
			yScale = models.ScalePoint
		}
		series = append(series, models.Series{
			Name:   key,
			Color:  m.colors.Next(),
			Fill:   true,
			Points: linePoints(ds, roles.X, key, xScale, ys),
		})
	}

	data := &models.ChartData{
		Type:   models.ChartLine,
		Series: series,
		XAxis:  models.Axis{Scale: xScale, Title: roles.X},
		YAxis:  models.Axis{Scale: yScale},
	}
	if len(roles.Y) == 1 {
		data.YAxis.Title = roles.Y[0]
	}
	if xScale == models.ScalePoint {
		data.Labels = lo.Uniq(lo.Map(ds.Rows, func(row models.Row, _ int) string {
			return Text(row[roles.X])
		}))
	}
	return data
}

func linePoints(ds *models.Dataset, x, y string, xScale, yScale models.Scale) []models.Point {
	points := make([]models.Point, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		var pt models.Point

		switch xScale {
		case models.ScaleTime:
			t, ok := DateValue(row[x])
			if !ok {
				continue
			}
			pt.X = float64(t.UnixMilli())
		case models.ScaleLinear:
			v, ok := Number(row[x])
			if !ok {
				continue
			}
			pt.X = v
		default:
			pt.XCategory = Text(row[x])
		}

		if yScale == models.ScaleLinear {
			v, ok := Number(row[y])
			if !ok {
				continue
			}
			pt.Y = v
		} else {
			pt.YCategory = Text(row[y])
		}

		points = append(points, pt)
	}

	if xScale == models.ScaleTime || xScale == models.ScaleLinear {
		slices.SortStableFunc(points, func(a, b models.Point) int {
			switch {
			case a.X < b.X:
				return -1
			case a.X > b.X:
				return 1
			}
			return 0
		})
	}
	return points
}
