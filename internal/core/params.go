package core

import "strconv"

// Parameter is a single labelled value shown on a status panel.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a driver shows next to the grid.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Lines flattens the snapshot into "Label: value" strings in display order.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, group := range s.Groups {
		for _, p := range group.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

// IntParam builds an integer-valued parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

// Int64Param builds a 64-bit integer parameter.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatInt(value, 10)}
}

// BoolParam builds a yes/no parameter.
func BoolParam(key, label string, value bool) Parameter {
	v := "no"
	if value {
		v = "yes"
	}
	return Parameter{Key: key, Label: label, Value: v}
}
