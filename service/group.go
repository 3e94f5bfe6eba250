package service

import (
	"errors"
	"fmt"
)

// Group starts services in registration order and stops them in reverse
type Group struct {
	services []Service
	started  int
}

// Add registers a service, nil is ignored
func (g *Group) Add(s Service) {
	if s != nil {
		g.services = append(g.services, s)
	}
}

// Start starts every service, rolling back the started ones on the first failure
func (g *Group) Start() error {
	for i := g.started; i < len(g.services); i++ {
		if err := g.services[i].Start(); err != nil {
			stopErr := g.Stop()
			return errors.Join(fmt.Errorf("service %s: %w", g.services[i].Name(), err), stopErr)
		}
		g.started = i + 1
	}
	return nil
}

// Stop stops started services in reverse order and joins their errors
func (g *Group) Stop() error {
	var errs []error
	for i := g.started - 1; i >= 0; i-- {
		if err := g.services[i].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s: %w", g.services[i].Name(), err))
		}
	}
	g.started = 0
	return errors.Join(errs...)
}

// Names lists registered services in start order
func (g *Group) Names() []string {
	names := make([]string, len(g.services))
	for i, s := range g.services {
		names[i] = s.Name()
	}
	return names
}
