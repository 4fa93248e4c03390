package chart

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

const (
	red  = "rgba(255, 0, 0, 0.6)"
	blue = "rgba(0, 0, 255, 0.6)"
)

func testMapper(opts MapOptions) *Mapper {
	return NewMapper(PaletteColors("#ff0000", "#0000ff"), opts)
}

func dataset(columns []string, rows ...models.Row) *models.Dataset {
	return &models.Dataset{Columns: columns, Rows: rows, TotalRows: len(rows)}
}

func TestMapBarScenario(t *testing.T) {
	ds := dataset([]string{"name", "score"},
		models.Row{"name": "A", "score": "10"},
		models.Row{"name": "B", "score": "20"},
	)

	data, err := testMapper(MapOptions{}).Map(ds, models.ChartBar,
		models.RoleAssignment{X: "name", Y: []string{"score"}})
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, []string{"A", "B"}, data.Labels)
	require.Len(t, data.Series, 1)
	assert.Equal(t, "score", data.Series[0].Name)
	assert.Equal(t, []float64{10, 20}, data.Series[0].Values)
	assert.Equal(t, red, data.Series[0].Color)
	assert.False(t, data.Series[0].Fill)
	assert.Equal(t, models.Axis{Scale: models.ScaleCategory, Title: "name"}, data.XAxis)
	assert.Equal(t, "score", data.YAxis.Title)
}

func TestMapCategoricalLabelsMatchRows(t *testing.T) {
	ds := dataset([]string{"k", "a", "b"},
		models.Row{"k": "x", "a": 1.0, "b": "oops"},
		models.Row{"k": "x", "a": "2"},
		models.Row{"a": 3.5, "b": " 4 "},
	)

	for _, ct := range []models.ChartType{models.ChartBar, models.ChartLine, models.ChartRadar} {
		data, err := testMapper(MapOptions{}).Map(ds, ct,
			models.RoleAssignment{X: "k", Y: []string{"a", "b"}})
		require.NoError(t, err, ct)
		require.NotNil(t, data, ct)

		// Labels repeat and keep row order; a missing x is an empty label.
		assert.Equal(t, []string{"x", "x", ""}, data.Labels, ct)
		require.Len(t, data.Series, 2, ct)
		assert.Equal(t, []float64{1, 2, 3.5}, data.Series[0].Values, ct)
		assert.Equal(t, []float64{0, 0, 4}, data.Series[1].Values, ct)
		assert.Equal(t, red, data.Series[0].Color, ct)
		assert.Equal(t, blue, data.Series[1].Color, ct)
		assert.Equal(t, ct != models.ChartBar, data.Series[0].Fill, ct)
		assert.Empty(t, data.YAxis.Title, ct)
	}
}

func TestMapProportionScenario(t *testing.T) {
	// cat,cat / foo,foo collapses to one column.
	ds := dataset([]string{"cat"}, models.Row{"cat": "foo"})

	for _, ct := range []models.ChartType{models.ChartPie, models.ChartDoughnut, models.ChartPolarArea} {
		data, err := testMapper(MapOptions{}).Map(ds, ct, models.RoleAssignment{Y: []string{"cat"}})
		require.NoError(t, err, ct)
		require.NotNil(t, data, ct)

		assert.Equal(t, []string{"Item 1"}, data.Labels, ct)
		require.Len(t, data.Series, 1, ct)
		assert.Equal(t, "cat", data.Series[0].Name, ct)
		assert.Equal(t, []float64{0}, data.Series[0].Values, ct)
	}
}

func TestMapProportionLabels(t *testing.T) {
	ds := dataset([]string{"name", "v"},
		models.Row{"name": "a", "v": 1.0},
		models.Row{"v": 2.0},
		models.Row{"name": 3.0, "v": "x"},
	)

	data, err := testMapper(MapOptions{}).Map(ds, models.ChartPie,
		models.RoleAssignment{Label: "name", Y: []string{"v"}})
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, []string{"a", "Item 2", "3"}, data.Labels)
	assert.Equal(t, []float64{1, 2, 0}, data.Series[0].Values)
	// One color per slice.
	assert.Equal(t, []string{red, blue, red}, data.Series[0].Colors)
	assert.Empty(t, data.Series[0].Color)

	data, err = testMapper(MapOptions{}).Map(ds, models.ChartPie, models.RoleAssignment{Y: []string{"v"}})
	require.NoError(t, err)
	for i, l := range data.Labels {
		assert.Equal(t, fmt.Sprintf("Item %d", i+1), l)
	}
}

func TestMapCoordinate(t *testing.T) {
	ds := dataset([]string{"x", "y", "r"},
		models.Row{"x": "1", "y": "2", "r": "7"},
		models.Row{"x": "bad", "y": "3"},
		models.Row{"x": 4.0, "y": 5.0, "r": "0"},
		models.Row{"x": 6.0, "y": 7.0},
	)
	roles := models.RoleAssignment{X: "x", Y: []string{"y"}}

	data, err := testMapper(MapOptions{}).Map(ds, models.ChartScatter, roles)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Nil(t, data.Labels)
	require.Len(t, data.Series, 1)
	assert.Equal(t, "y", data.Series[0].Name)
	assert.Equal(t, []models.Point{{X: 1, Y: 2}, {X: 4, Y: 5}, {X: 6, Y: 7}}, data.Series[0].Points)
	assert.True(t, data.HasPoints())

	data, err = testMapper(MapOptions{CoordinateInvalid: ZeroInvalid}).Map(ds, models.ChartScatter, roles)
	require.NoError(t, err)
	assert.Len(t, data.Series[0].Points, 4)
	assert.Equal(t, models.Point{X: 0, Y: 3}, data.Series[0].Points[1])

	data, err = testMapper(MapOptions{}).Map(ds, models.ChartBubble, roles)
	require.NoError(t, err)
	assert.Equal(t, []models.Point{
		{X: 1, Y: 2, R: 7},
		{X: 4, Y: 5, R: DefaultBubbleRadius},
		{X: 6, Y: 7, R: DefaultBubbleRadius},
	}, data.Series[0].Points)
}

func TestMapNotReady(t *testing.T) {
	ds := dataset([]string{"a", "b"}, models.Row{"a": "1", "b": "2"})
	m := testMapper(MapOptions{})

	tests := []struct {
		chart models.ChartType
		roles models.RoleAssignment
	}{
		{models.ChartBar, models.RoleAssignment{}},
		{models.ChartBar, models.RoleAssignment{X: "a"}},
		{models.ChartLine, models.RoleAssignment{Y: []string{"b"}}},
		{models.ChartPie, models.RoleAssignment{Label: "a"}},
		{models.ChartScatter, models.RoleAssignment{Y: []string{"b"}}},
	}
	for _, tt := range tests {
		data, err := m.Map(ds, tt.chart, tt.roles)
		assert.NoError(t, err, tt.chart)
		assert.Nil(t, data, tt.chart)
	}
}

func TestMapErrors(t *testing.T) {
	m := testMapper(MapOptions{})

	_, err := m.Map(nil, models.ChartBar, models.RoleAssignment{X: "a", Y: []string{"b"}})
	assert.ErrorIs(t, err, ErrNoDataset)

	_, err = m.Map(dataset(nil), models.ChartType("gauge"), models.RoleAssignment{})
	assert.Error(t, err)
}

func TestMapAdaptiveLineDates(t *testing.T) {
	ds := dataset([]string{"t", "v"},
		models.Row{"t": "2021-01-02", "v": 5.0},
		models.Row{"t": "2021-01-01", "v": 3.0},
		models.Row{"t": "not a date", "v": 9.0},
		models.Row{"t": "2021-01-03"},
	)

	data, err := testMapper(MapOptions{AdaptiveAxes: true}).Map(ds, models.ChartLine,
		models.RoleAssignment{X: "t", Y: []string{"v"}})
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, models.ScaleTime, data.XAxis.Scale)
	assert.Equal(t, models.ScaleLinear, data.YAxis.Scale)
	assert.Nil(t, data.Labels)

	day := func(d int) float64 {
		return float64(time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC).UnixMilli())
	}
	require.Len(t, data.Series, 1)
	assert.Equal(t, []models.Point{{X: day(1), Y: 3}, {X: day(2), Y: 5}}, data.Series[0].Points)
	assert.True(t, data.Series[0].Fill)
}

func TestMapAdaptiveLineNumeric(t *testing.T) {
	ds := dataset([]string{"x", "y"},
		models.Row{"x": "3", "y": "30"},
		models.Row{"x": 1.0, "y": "10"},
		models.Row{"x": "2", "y": 20.0},
	)

	data, err := testMapper(MapOptions{AdaptiveAxes: true}).Map(ds, models.ChartLine,
		models.RoleAssignment{X: "x", Y: []string{"y"}})
	require.NoError(t, err)

	assert.Equal(t, models.ScaleLinear, data.XAxis.Scale)
	assert.Equal(t, []models.Point{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30}}, data.Series[0].Points)
}

func TestMapAdaptiveLineDropsUnparsableRows(t *testing.T) {
	ds := dataset([]string{"x", "y"},
		models.Row{"x": "3", "y": "7"},
		models.Row{"x": "1", "y": "n/a"},
		models.Row{"x": "oops", "y": "9"},
		models.Row{"x": "2", "y": "5"},
		models.Row{"x": "4"},
	)

	data, err := testMapper(MapOptions{AdaptiveAxes: true}).Map(ds, models.ChartLine,
		models.RoleAssignment{X: "x", Y: []string{"y"}})
	require.NoError(t, err)

	assert.Equal(t, models.ScaleLinear, data.XAxis.Scale)
	assert.Equal(t, models.ScaleLinear, data.YAxis.Scale)
	assert.Nil(t, data.Labels)
	assert.Equal(t, []models.Point{{X: 2, Y: 5}, {X: 3, Y: 7}}, data.Series[0].Points)
}

func TestMapAdaptiveLineMixedAxes(t *testing.T) {
	ds := dataset([]string{"x", "y"},
		models.Row{"x": "2", "y": "high"},
		models.Row{"x": "bad", "y": "low"},
		models.Row{"x": "1", "y": "mid"},
	)

	data, err := testMapper(MapOptions{AdaptiveAxes: true}).Map(ds, models.ChartLine,
		models.RoleAssignment{X: "x", Y: []string{"y"}})
	require.NoError(t, err)

	assert.Equal(t, models.ScaleLinear, data.XAxis.Scale)
	assert.Equal(t, models.ScalePoint, data.YAxis.Scale)
	assert.Equal(t, []models.Point{{X: 1, YCategory: "mid"}, {X: 2, YCategory: "high"}}, data.Series[0].Points)
}

func TestMapAdaptiveLineCategorical(t *testing.T) {
	ds := dataset([]string{"day", "mood"},
		models.Row{"day": "north", "mood": "good"},
		models.Row{"day": "south", "mood": "bad"},
		models.Row{"day": "north", "mood": "ok"},
	)

	data, err := testMapper(MapOptions{AdaptiveAxes: true}).Map(ds, models.ChartLine,
		models.RoleAssignment{X: "day", Y: []string{"mood"}})
	require.NoError(t, err)

	assert.Equal(t, models.ScalePoint, data.XAxis.Scale)
	assert.Equal(t, models.ScalePoint, data.YAxis.Scale)
	assert.Equal(t, []string{"north", "south"}, data.Labels)
	assert.Equal(t, []models.Point{
		{XCategory: "north", YCategory: "good"},
		{XCategory: "south", YCategory: "bad"},
		{XCategory: "north", YCategory: "ok"},
	}, data.Series[0].Points)
}

func TestMapAdaptiveCountBar(t *testing.T) {
	ds := dataset([]string{"fruit"},
		models.Row{"fruit": "apple"},
		models.Row{"fruit": "pear"},
		models.Row{"fruit": "apple"},
		models.Row{"fruit": "plum"},
	)
	m := testMapper(MapOptions{AdaptiveAxes: true})
	roles := models.RoleAssignment{X: "fruit"}
	assert.True(t, m.Ready(models.ChartBar, roles))

	data, err := m.Map(ds, models.ChartBar, roles)
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, []string{"apple", "pear", "plum"}, data.Labels)
	require.Len(t, data.Series, 1)
	assert.Equal(t, CountSeriesName, data.Series[0].Name)
	assert.Equal(t, []float64{2, 1, 1}, data.Series[0].Values)

	// Without adaptive axes the same roles are not ready.
	data, err = testMapper(MapOptions{}).Map(ds, models.ChartBar, roles)
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestMapAdaptiveHorizontalBar(t *testing.T) {
	ds := dataset([]string{"score", "name"},
		models.Row{"score": "10", "name": "A"},
		models.Row{"score": "20", "name": "B"},
	)
	m := testMapper(MapOptions{AdaptiveAxes: true})

	data, err := m.Map(ds, models.ChartBar, models.RoleAssignment{X: "score", Y: []string{"name"}})
	require.NoError(t, err)
	assert.True(t, data.Horizontal)
	assert.Equal(t, []string{"A", "B"}, data.Labels)
	assert.Equal(t, []float64{10, 20}, data.Series[0].Values)
	assert.Equal(t, models.ScaleCategory, data.YAxis.Scale)

	data, err = m.Map(ds, models.ChartBar, models.RoleAssignment{X: "name", Y: []string{"score"}})
	require.NoError(t, err)
	assert.False(t, data.Horizontal)
	assert.Equal(t, []string{"A", "B"}, data.Labels)
}

func TestQuickRoles(t *testing.T) {
	assert.True(t, QuickRoles(nil).IsZero())
	assert.True(t, QuickRoles(dataset(nil)).IsZero())

	roles := QuickRoles(dataset([]string{"a"}))
	assert.Equal(t, models.RoleAssignment{X: "a"}, roles)

	roles = QuickRoles(dataset([]string{"a", "b", "c"}))
	assert.Equal(t, models.RoleAssignment{X: "a", Y: []string{"b", "c"}}, roles)
}
