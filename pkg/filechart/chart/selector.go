// Package chart assigns columns to chart roles and maps datasets to chart-ready data.
package chart

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

// Policy configures role selection.
type Policy struct {
	// AllowXInY lets the x column also be selected as a y column.
	// When false, choosing x removes it from y and y selections equal to x are ignored.
	AllowXInY bool
}

// Selector holds the role assignment for one dataset and chart type.
type Selector struct {
	columns []string
	chart   models.ChartType
	roles   models.RoleAssignment
	policy  Policy
}

// NewSelector creates a selector with no roles assigned.
// An unknown chart type falls back to bar.
func NewSelector(columns []string, t models.ChartType, policy Policy) *Selector {
	if !t.Valid() {
		t = models.ChartBar
	}
	return &Selector{
		columns: append([]string(nil), columns...),
		chart:   t,
		policy:  policy,
	}
}

// ChartType returns the current chart type.
func (s *Selector) ChartType() models.ChartType {
	return s.chart
}

// Columns returns the selectable columns.
func (s *Selector) Columns() []string {
	return s.columns
}

// Roles returns a copy of the current assignment.
func (s *Selector) Roles() models.RoleAssignment {
	return s.roles.Clone()
}

// Enabled reports whether role can be assigned for the current chart type.
func (s *Selector) Enabled(role models.Role) bool {
	c := s.chart.Contract()
	switch role {
	case models.RoleX:
		return c.XEnabled
	case models.RoleLabel:
		return c.LabelEnabled
	case models.RoleY:
		return true
	}
	return false
}

// SetChartType switches the chart type and clears every role.
func (s *Selector) SetChartType(t models.ChartType) (models.RoleAssignment, error) {
	if !t.Valid() {
		return s.Roles(), fmt.Errorf("unknown chart type: %q", t)
	}
	s.chart = t
	s.roles = models.RoleAssignment{}
	return s.Roles(), nil
}

// Reset replaces the selectable columns, as after a new upload, and clears every role.
func (s *Selector) Reset(columns []string) models.RoleAssignment {
	s.columns = append([]string(nil), columns...)
	s.roles = models.RoleAssignment{}
	return s.Roles()
}

// Select assigns column to role and returns the new assignment.
// An empty column clears the role. Disabled roles and unknown columns are
// left untouched. For y, multi-series charts toggle column in or out of
// the list, single-series charts replace it.
func (s *Selector) Select(role models.Role, column string) models.RoleAssignment {
	if !s.Enabled(role) {
		return s.Roles()
	}
	if column != "" && !lo.Contains(s.columns, column) {
		return s.Roles()
	}

	switch role {
	case models.RoleX:
		s.roles.X = column
		if column != "" && !s.policy.AllowXInY {
			s.roles.Y = without(s.roles.Y, column)
		}
	case models.RoleLabel:
		s.roles.Label = column
	case models.RoleY:
		s.selectY(column)
	}
	return s.Roles()
}

func (s *Selector) selectY(column string) {
	if column == "" {
		s.roles.Y = nil
		return
	}
	if !s.policy.AllowXInY && column == s.roles.X {
		return
	}

	maxY := s.chart.Contract().MaxY
	switch {
	case maxY == 1:
		s.roles.Y = []string{column}
	case lo.Contains(s.roles.Y, column):
		s.roles.Y = without(s.roles.Y, column)
	case maxY == 0 || len(s.roles.Y) < maxY:
		s.roles.Y = append(s.roles.Y, column)
	}
}

// SetY replaces the y list. Unknown and repeated columns are dropped and the
// list is capped to what the chart type accepts.
func (s *Selector) SetY(columns ...string) models.RoleAssignment {
	ys := lo.Uniq(lo.Filter(columns, func(c string, _ int) bool {
		if !lo.Contains(s.columns, c) {
			return false
		}
		return s.policy.AllowXInY || c != s.roles.X
	}))
	if maxY := s.chart.Contract().MaxY; maxY > 0 && len(ys) > maxY {
		ys = ys[:maxY]
	}
	if len(ys) == 0 {
		ys = nil
	}
	s.roles.Y = ys
	return s.Roles()
}

// Ready reports whether the assignment satisfies the chart type's contract.
func (s *Selector) Ready() bool {
	return Ready(s.chart, s.roles)
}

// Ready reports whether roles satisfy the contract of t.
func Ready(t models.ChartType, roles models.RoleAssignment) bool {
	if !t.Valid() {
		return false
	}
	c := t.Contract()
	n := len(roles.Y)
	if n < c.MinY || (c.MaxY > 0 && n > c.MaxY) {
		return false
	}
	if c.XEnabled && roles.X == "" {
		return false
	}
	return true
}

// without removes column from ys, keeping a nil list when nothing is left.
func without(ys []string, column string) []string {
	out := lo.Without(ys, column)
	if len(out) == 0 {
		return nil
	}
	return out
}
