package cmd

import "sort"

// DefaultRegistry is the global registry adapters register into, usually
// from init() in the packages defining the commands.
var DefaultRegistry = NewRegistry()

// Registry stores commands by name. It does not perform dispatch; each adapter
// looks commands up and invokes them with its own context. The expected
// lifecycle is register-everything-at-startup, read-only afterwards.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command, replacing any previous command of the same name.
func (r *Registry) Register(c Command) {
	r.commands[c.Name()] = c
}

// Get returns the command with the given name.
func (r *Registry) Get(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// GetAll returns all registered commands, sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
