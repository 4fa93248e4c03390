package chart

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

// ErrNoDataset is returned when mapping is attempted without a dataset.
var ErrNoDataset = errors.New("no dataset loaded")

const (
	// BubbleRadiusColumn is the column bubble radii are read from.
	BubbleRadiusColumn = "r"
	// DefaultBubbleRadius is used when a row has no usable radius.
	DefaultBubbleRadius = 5
)

// InvalidPolicy decides what happens to a coordinate row that fails numeric coercion.
type InvalidPolicy int

const (
	// DropInvalid leaves the row out of the series.
	DropInvalid InvalidPolicy = iota
	// ZeroInvalid plots the failing value as 0.
	ZeroInvalid
)

// MapOptions configures the mapper.
type MapOptions struct {
	// AdaptiveAxes enables count bars, horizontal bars and continuous line axes.
	AdaptiveAxes bool
	// CoordinateInvalid applies to scatter and bubble charts.
	CoordinateInvalid InvalidPolicy
}

// Mapper turns a dataset and role assignment into chart-ready data.
type Mapper struct {
	colors ColorSource
	opts   MapOptions
}

// NewMapper creates a mapper. A nil color source uses RandomColors.
func NewMapper(colors ColorSource, opts MapOptions) *Mapper {
	if colors == nil {
		colors = RandomColors()
	}
	return &Mapper{colors: colors, opts: opts}
}

// Ready reports whether roles are complete enough to map t.
// With adaptive axes a bar chart is ready with only x assigned.
func (m *Mapper) Ready(t models.ChartType, roles models.RoleAssignment) bool {
	if m.opts.AdaptiveAxes && t == models.ChartBar && roles.X != "" && len(roles.Y) == 0 {
		return true
	}
	return Ready(t, roles)
}

// Map produces chart data for ds. It returns nil data and a nil error while
// the required roles are not assigned yet.
func (m *Mapper) Map(ds *models.Dataset, t models.ChartType, roles models.RoleAssignment) (*models.ChartData, error) {
	if ds == nil {
		return nil, ErrNoDataset
	}
	if !t.Valid() {
		return nil, fmt.Errorf("unknown chart type: %q", t)
	}
	if !m.Ready(t, roles) {
		return nil, nil
	}

	switch t.Family() {
	case models.FamilyProportion:
		return m.mapProportion(ds, t, roles), nil
	case models.FamilyCoordinate:
		return m.mapCoordinate(ds, t, roles), nil
	}

	if m.opts.AdaptiveAxes {
		switch t {
		case models.ChartBar:
			return m.mapAdaptiveBar(ds, roles), nil
		case models.ChartLine:
			return m.mapAdaptiveLine(ds, roles), nil
		}
	}
	return m.mapCategorical(ds, t, roles), nil
}

// mapCategorical maps bar, line and radar charts: one label per row, one series per y column.
func (m *Mapper) mapCategorical(ds *models.Dataset, t models.ChartType, roles models.RoleAssignment) *models.ChartData {
	labels := lo.Map(ds.Rows, func(row models.Row, _ int) string {
		return Text(row[roles.X])
	})

	fill := t.Contract().Fill
	series := make([]models.Series, 0, len(roles.Y))
	for _, key := range roles.Y {
		series = append(series, models.Series{
			Name:   key,
			Color:  m.colors.Next(),
			Fill:   fill,
			Values: columnNumbers(ds, key),
		})
	}

	data := &models.ChartData{
		Type:   t,
		Labels: labels,
		Series: series,
		XAxis:  models.Axis{Scale: models.ScaleCategory, Title: roles.X},
		YAxis:  models.Axis{Scale: models.ScaleLinear},
	}
	if len(roles.Y) == 1 {
		data.YAxis.Title = roles.Y[0]
	}
	return data
}

// mapProportion maps pie, doughnut and polar area charts: one slice per row.
func (m *Mapper) mapProportion(ds *models.Dataset, t models.ChartType, roles models.RoleAssignment) *models.ChartData {
	key := roles.Y[0]

	labels := make([]string, len(ds.Rows))
	colors := make([]string, len(ds.Rows))
	for i, row := range ds.Rows {
		labels[i] = sliceLabel(row, roles.Label, i)
		colors[i] = m.colors.Next()
	}

	return &models.ChartData{
		Type:   t,
		Labels: labels,
		Series: []models.Series{{
			Name:   key,
			Colors: colors,
			Values: columnNumbers(ds, key),
		}},
	}
}

// sliceLabel returns the label column value, or "Item n" when it is unset or absent.
func sliceLabel(row models.Row, label string, i int) string {
	if label != "" {
		if v, ok := row[label]; ok && v != nil {
			return Text(v)
		}
	}
	return fmt.Sprintf("Item %d", i+1)
}

// mapCoordinate maps scatter and bubble charts: one point per row.
func (m *Mapper) mapCoordinate(ds *models.Dataset, t models.ChartType, roles models.RoleAssignment) *models.ChartData {
	keyY := roles.Y[0]

	points := make([]models.Point, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		x, okX := Number(row[roles.X])
		y, okY := Number(row[keyY])
		if (!okX || !okY) && m.opts.CoordinateInvalid == DropInvalid {
			continue
		}

		pt := models.Point{X: x, Y: y}
		if t == models.ChartBubble {
			pt.R = bubbleRadius(row)
		}
		points = append(points, pt)
	}

	return &models.ChartData{
		Type: t,
		Series: []models.Series{{
			Name:   keyY,
			Color:  m.colors.Next(),
			Points: points,
		}},
		XAxis: models.Axis{Scale: models.ScaleLinear, Title: roles.X},
		YAxis: models.Axis{Scale: models.ScaleLinear, Title: keyY},
	}
}

func bubbleRadius(row models.Row) float64 {
	if r, ok := Number(row[BubbleRadiusColumn]); ok && r != 0 {
		return r
	}
	return DefaultBubbleRadius
}

// columnNumbers coerces one column to numbers, 0 on failure.
func columnNumbers(ds *models.Dataset, key string) []float64 {
	return lo.Map(ds.Rows, func(row models.Row, _ int) float64 {
		return NumberOr0(row[key])
	})
}

// QuickRoles assigns the first column to x and every other column to y.
func QuickRoles(ds *models.Dataset) models.RoleAssignment {
	if ds == nil || len(ds.Columns) == 0 {
		return models.RoleAssignment{}
	}
	roles := models.RoleAssignment{X: ds.Columns[0]}
	if len(ds.Columns) > 1 {
		roles.Y = append([]string(nil), ds.Columns[1:]...)
	}
	return roles
}
