package models

import (
	"fmt"
	"strings"
)

// ChartType is the chart type tag.
type ChartType string

const (
	ChartBar       ChartType = "bar"
	ChartLine      ChartType = "line"
	ChartPie       ChartType = "pie"
	ChartRadar     ChartType = "radar"
	ChartDoughnut  ChartType = "doughnut"
	ChartPolarArea ChartType = "polarArea"
	ChartScatter   ChartType = "scatter"
	ChartBubble    ChartType = "bubble"
)

// Family groups chart types that share a mapping algorithm.
type Family int

const (
	// FamilyCategorical covers bar, line and radar: labels from X, one series per Y.
	FamilyCategorical Family = iota
	// FamilyProportion covers pie, doughnut and polarArea: one value per slice.
	FamilyProportion
	// FamilyCoordinate covers scatter and bubble: one numeric point per row.
	FamilyCoordinate
)

func (f Family) String() string {
	switch f {
	case FamilyCategorical:
		return "categorical"
	case FamilyProportion:
		return "proportion"
	case FamilyCoordinate:
		return "coordinate"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Contract is the shape contract carried by a chart type.
type Contract struct {
	// Family selects the mapping algorithm.
	Family Family
	// XEnabled reports whether the x role can be assigned.
	XEnabled bool
	// LabelEnabled reports whether the label role can be assigned.
	LabelEnabled bool
	// MinY is the minimum number of y columns for a ready assignment.
	MinY int
	// MaxY is the maximum number of y columns (0 means unbounded).
	MaxY int
	// Fill reports whether series are drawn filled.
	Fill bool
}

var contracts = map[ChartType]Contract{
	ChartBar:       {Family: FamilyCategorical, XEnabled: true, MinY: 1},
	ChartLine:      {Family: FamilyCategorical, XEnabled: true, MinY: 1, Fill: true},
	ChartRadar:     {Family: FamilyCategorical, XEnabled: true, MinY: 1, Fill: true},
	ChartPie:       {Family: FamilyProportion, LabelEnabled: true, MinY: 1, MaxY: 1},
	ChartDoughnut:  {Family: FamilyProportion, LabelEnabled: true, MinY: 1, MaxY: 1},
	ChartPolarArea: {Family: FamilyProportion, LabelEnabled: true, MinY: 1, MaxY: 1},
	ChartScatter:   {Family: FamilyCoordinate, XEnabled: true, MinY: 1, MaxY: 1},
	ChartBubble:    {Family: FamilyCoordinate, XEnabled: true, MinY: 1, MaxY: 1},
}

// AllChartTypes returns every chart type in display order.
func AllChartTypes() []ChartType {
	return []ChartType{
		ChartBar, ChartLine, ChartPie, ChartRadar,
		ChartDoughnut, ChartPolarArea, ChartScatter, ChartBubble,
	}
}

// Valid reports whether t is a known chart type.
func (t ChartType) Valid() bool {
	_, ok := contracts[t]
	return ok
}

// Contract returns the shape contract of t. Unknown types return a zero Contract.
func (t ChartType) Contract() Contract {
	return contracts[t]
}

// Family returns the mapping family of t.
func (t ChartType) Family() Family {
	return contracts[t].Family
}

// ParseChartType parses a chart type name case-insensitively.
func ParseChartType(s string) (ChartType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllChartTypes() {
		if strings.ToLower(string(t)) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown chart type: %q", s)
}
