package core

// ParamType is the kind of value a Parameter holds.
type ParamType string

const (
	ParamTypeInt    ParamType = "int"
	ParamTypeString ParamType = "string"
)

// Parameter is one named setting of a sim, rendered as text.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup is a titled set of parameters. Summary, when set, is a one
// line description of the whole group.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot is a point-in-time view of a sim's settings.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Group returns the group called name.
func (s ParameterSnapshot) Group(name string) (ParameterGroup, bool) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return ParameterGroup{}, false
}

// Lookup returns the first parameter with key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider is implemented by sims that describe their settings.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
