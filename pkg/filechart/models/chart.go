package models

// Scale is the kind of an axis scale.
type Scale string

const (
	// ScaleCategory is a discrete band scale over labels.
	ScaleCategory Scale = "category"
	// ScaleLinear is a continuous numeric scale.
	ScaleLinear Scale = "linear"
	// ScaleTime is a continuous time scale; values are unix milliseconds.
	ScaleTime Scale = "time"
	// ScalePoint is a discrete point scale over unsorted categories.
	ScalePoint Scale = "point"
)

// Axis describes one chart axis.
type Axis struct {
	// Scale is the axis scale kind.
	Scale Scale `json:"scale,omitempty"`
	// Title is the axis title, usually the column name.
	Title string `json:"title,omitempty"`
}

// Point is one plotted coordinate.
type Point struct {
	// X is the numeric x value (unix milliseconds on a time scale).
	X float64 `json:"x"`
	// Y is the numeric y value.
	Y float64 `json:"y"`
	// R is the bubble radius (bubble charts only).
	R float64 `json:"r,omitempty"`
	// XCategory is the x value on a point scale.
	XCategory string `json:"x_category,omitempty"`
	// YCategory is the y value on a point scale.
	YCategory string `json:"y_category,omitempty"`
}

// Series is one named data series.
type Series struct {
	// Name is the series display name, usually the value column.
	Name string `json:"name"`
	// Color is the series color (categorical and coordinate charts).
	Color string `json:"color,omitempty"`
	// Colors holds one color per slice (proportion charts).
	Colors []string `json:"colors,omitempty"`
	// Fill reports whether the series area is filled.
	Fill bool `json:"fill,omitempty"`
	// Values holds one number per label (categorical and proportion charts).
	Values []float64 `json:"values,omitempty"`
	// Points holds coordinates (coordinate charts and continuous lines).
	Points []Point `json:"points,omitempty"`
}

// ChartData is the chart-ready output of the mapper.
type ChartData struct {
	// Type is the chart type the data was mapped for.
	Type ChartType `json:"type"`
	// Labels holds one category label per value; nil for coordinate data.
	Labels []string `json:"labels,omitempty"`
	// Series lists the data series in order.
	Series []Series `json:"series"`
	// XAxis describes the x axis (empty for proportion charts).
	XAxis Axis `json:"x_axis,omitempty"`
	// YAxis describes the y axis (empty for proportion charts).
	YAxis Axis `json:"y_axis,omitempty"`
	// Horizontal is set when bars are drawn along the y axis.
	Horizontal bool `json:"horizontal,omitempty"`
}

// HasPoints reports whether any series carries coordinates instead of values.
func (c *ChartData) HasPoints() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}
