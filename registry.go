package sitekit

import (
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
)

// FilterFunc transforms a template value. Extra arguments come from the
// template call site.
type FilterFunc func(value any, args ...any) (any, error)

// CollectionFunc derives an ordered set of content items from all items.
type CollectionFunc func(items []*ContentItem) []*ContentItem

// TransformFunc rewrites a rendered output file's content. outputPath is the
// file's location relative to the site root.
type TransformFunc func(content, outputPath string) (string, error)

type namedTransform struct {
	name string
	fn   TransformFunc
}

// Registry holds the named extension points a site build consults.
// It is safe for concurrent use; registration usually happens once in Setup.
type Registry struct {
	mu          sync.RWMutex
	filters     map[string]FilterFunc
	collections map[string]CollectionFunc
	transforms  []namedTransform
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		filters:     make(map[string]FilterFunc),
		collections: make(map[string]CollectionFunc),
	}
}

// AddFilter registers fn under name.
func (r *Registry) AddFilter(name string, fn FilterFunc) error {
	if err := checkRegistration(name, fn == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.filters[name]; ok {
		return fmt.Errorf("%w: filter %q", ErrDuplicateName, name)
	}
	r.filters[name] = fn
	return nil
}

// AddCollection registers fn under name.
func (r *Registry) AddCollection(name string, fn CollectionFunc) error {
	if err := checkRegistration(name, fn == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.collections[name]; ok {
		return fmt.Errorf("%w: collection %q", ErrDuplicateName, name)
	}
	r.collections[name] = fn
	return nil
}

// AddTransform appends fn to the transform chain. Transforms run in
// registration order.
func (r *Registry) AddTransform(name string, fn TransformFunc) error {
	if err := checkRegistration(name, fn == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transforms {
		if t.name == name {
			return fmt.Errorf("%w: transform %q", ErrDuplicateName, name)
		}
	}
	r.transforms = append(r.transforms, namedTransform{name: name, fn: fn})
	return nil
}

func checkRegistration(name string, nilFunc bool) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if nilFunc {
		return fmt.Errorf("%w: nil function for %q", ErrInvalidName, name)
	}
	return nil
}

// Filter returns the filter registered under name.
func (r *Registry) Filter(name string) (FilterFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.filters[name]
	return fn, ok
}

// ApplyFilter runs the named filter.
func (r *Registry) ApplyFilter(name string, value any, args ...any) (any, error) {
	fn, ok := r.Filter(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return fn(value, args...)
}

// Collection builds the named collection from items. The input slice is
// not modified.
func (r *Registry) Collection(name string, items []*ContentItem) ([]*ContentItem, error) {
	r.mu.RLock()
	fn, ok := r.collections[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return fn(slices.Clone(items)), nil
}

// Transform runs content through every registered transform in order.
// The first error stops the chain.
func (r *Registry) Transform(content, outputPath string) (string, error) {
	r.mu.RLock()
	chain := slices.Clone(r.transforms)
	r.mu.RUnlock()

	outputPath = path.Clean(strings.ReplaceAll(outputPath, `\`, "/"))
	for _, t := range chain {
		out, err := t.fn(content, outputPath)
		if err != nil {
			return content, fmt.Errorf("transform %s: %w", t.name, err)
		}
		content = out
	}
	return content, nil
}

// FilterNames returns the registered filter names, sorted.
func (r *Registry) FilterNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CollectionNames returns the registered collection names, sorted.
func (r *Registry) CollectionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TransformNames returns the transform names in execution order.
func (r *Registry) TransformNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.transforms))
	for i, t := range r.transforms {
		names[i] = t.name
	}
	return names
}
