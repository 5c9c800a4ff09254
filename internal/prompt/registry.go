package prompt

// Argument describes the single input a generator accepts. The metadata is
// advertised to MCP clients as the prompt's argument schema.
type Argument struct {
	Name        string
	Description string
	Required    bool
}

// Generator pairs a pure prompt function with the metadata a client needs to
// discover and invoke it.
type Generator struct {
	Name        string
	Description string
	Argument    Argument
	Render      func(input string) string
}

// Registry maps generator names to their descriptors. It is constructed once
// at startup and never mutated afterwards; it holds no resources and needs
// no teardown.
type Registry struct {
	order  []Generator
	byName map[string]Generator
}

// NewRegistry returns the registry containing the specify and plan
// generators. Descriptions double as the one-line docs MCP clients see when
// they enumerate the catalog.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Generator)}

	r.add(Generator{
		Name:        "specify",
		Description: "Start the Spec-Driven Development process.",
		Argument: Argument{
			Name:        "goal",
			Description: "Free-text goal to specify",
			Required:    true,
		},
		Render: Specify,
	})

	r.add(Generator{
		Name:        "plan",
		Description: "Generate a plan from the spec.",
		Argument: Argument{
			Name:        "spec_content",
			Description: "Full content of the spec document",
			Required:    true,
		},
		Render: Plan,
	})

	return r
}

func (r *Registry) add(g Generator) {
	r.order = append(r.order, g)
	r.byName[g.Name] = g
}

// Get returns the generator registered under name.
func (r *Registry) Get(name string) (Generator, bool) {
	g, ok := r.byName[name]
	return g, ok
}

// List returns all generators in registration order. The returned slice is a
// copy; callers cannot mutate the registry through it.
func (r *Registry) List() []Generator {
	out := make([]Generator, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered generator names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, g := range r.order {
		names[i] = g.Name
	}
	return names
}
