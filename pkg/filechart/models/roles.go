package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Role is a slot a column can be assigned to.
type Role int

const (
	RoleX Role = iota
	RoleLabel
	RoleY
)

// Name returns a short name for r, such as "x".
func (r Role) Name() string {
	switch r {
	case RoleX:
		return "x"
	case RoleLabel:
		return "label"
	case RoleY:
		return "y"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// RoleFromName is the inverse of [Role.Name].
func RoleFromName(name string) (Role, bool) {
	switch name {
	case "x":
		return RoleX, true
	case "label":
		return RoleLabel, true
	case "y":
		return RoleY, true
	}
	return 0, false
}

// RoleAssignment records which columns drive the chart.
type RoleAssignment struct {
	// X is the x-axis column (categorical and coordinate charts).
	X string `json:"x,omitempty"`
	// Label is the slice label column (proportion charts).
	Label string `json:"label,omitempty"`
	// Y lists the value columns in selection order.
	Y []string `json:"y,omitempty"`
}

// IsZero reports whether no role is assigned.
func (a RoleAssignment) IsZero() bool {
	return a.X == "" && a.Label == "" && len(a.Y) == 0
}

// Clone returns a copy that does not share the Y slice.
func (a RoleAssignment) Clone() RoleAssignment {
	c := a
	if a.Y != nil {
		c.Y = append([]string(nil), a.Y...)
	}
	return c
}

// Validate checks that every assigned column exists in columns.
// All unknown references are reported together.
func (a RoleAssignment) Validate(columns []string) error {
	known := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		known[c] = struct{}{}
	}
	var result *multierror.Error
	check := func(role Role, col string) {
		if col == "" {
			return
		}
		if _, ok := known[col]; !ok {
			result = multierror.Append(result, fmt.Errorf("%s: unknown column %q", role.Name(), col))
		}
	}
	check(RoleX, a.X)
	check(RoleLabel, a.Label)
	for _, y := range a.Y {
		check(RoleY, y)
	}
	return result.ErrorOrNil()
}
