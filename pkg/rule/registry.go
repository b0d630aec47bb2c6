package rule

import "slices"

// Factory constructs a fresh Rule.
type Factory func() *Rule

var (
	factories = map[string]Factory{}
	order     []string
)

// Register adds a rule factory under the provided name. Registering an
// existing name replaces its factory but keeps its position.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	if _, ok := factories[name]; !ok {
		order = append(order, name)
	}
	factories[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := factories[name]
	return f, ok
}

// Names lists the registered rules in registration order, so front ends
// can cycle through them deterministically.
func Names() []string {
	return slices.Clone(order)
}

func init() {
	Register("conway", Conway)
	Register("highlife", HighLife)
	Register("daynight", DayNight)
	Register("maze", Maze)
}
