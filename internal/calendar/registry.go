package calendar

import (
	"github.com/ventolabs/ventocal/internal/config"
	"github.com/ventolabs/ventocal/internal/source"
)

// Registry holds one controller per configured calendar instance. Each
// instance gets its own data source: loaded windows are independent, so one
// calendar's navigation never evicts another's cache.
type Registry struct {
	controllers map[string]*Controller
}

// NewRegistry builds controllers for the given instances.
func NewRegistry(instances []config.Instance, newProvider func() source.Provider) *Registry {
	r := &Registry{controllers: make(map[string]*Controller, len(instances))}
	for _, inst := range instances {
		r.controllers[inst.Name] = New(inst.Name, inst.Options, source.New(newProvider()))
	}
	return r
}

// Get returns the controller for an instance name, or nil.
func (r *Registry) Get(name string) *Controller {
	return r.controllers[name]
}

// Names returns all registered instance names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	return names
}
