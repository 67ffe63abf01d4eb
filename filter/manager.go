package filter

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/votesmart/votesmart"
)

// Manager holds named filter presets
type Manager struct {
	compiler Compiler
	filters  map[string]CompiledFilter
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		filters:  make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Compile compiles an ad-hoc expression with the manager's compiler
func (m *Manager) Compile(expression string) (CompiledFilter, error) {
	return m.compiler.Compile(expression)
}

// RegisterFilter registers a new filter or updates an existing one.
// Names are case-insensitive.
func (m *Manager) RegisterFilter(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[strings.ToLower(name)] = filter
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers multiple filters at once. Nothing is registered
// unless every expression compiles.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(filters))

	for name, expression := range filters {
		filter, err := m.compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[strings.ToLower(name)] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// UnregisterFilter removes a filter
func (m *Manager) UnregisterFilter(name string) {
	m.mu.Lock()
	delete(m.filters, strings.ToLower(name))
	m.mu.Unlock()
}

// GetFilter returns a compiled filter by name
func (m *Manager) GetFilter(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, exists := m.filters[strings.ToLower(name)]
	m.mu.RUnlock()
	return filter, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.filters))
	for name := range m.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply returns the records matching filter, in their original order
func Apply(ctx context.Context, filter Filter, records []votesmart.Record) ([]votesmart.Record, error) {
	matches := make([]votesmart.Record, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := filter.Evaluate(rec)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// EvaluateFilter applies a single registered filter
func (m *Manager) EvaluateFilter(ctx context.Context, name string, records []votesmart.Record) ([]votesmart.Record, error) {
	filter, exists := m.GetFilter(name)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFilterNotFound, name)
	}

	return Apply(ctx, filter, records)
}

// EvaluateAll applies every registered filter concurrently
func (m *Manager) EvaluateAll(ctx context.Context, records []votesmart.Record) (map[string][]votesmart.Record, error) {
	m.mu.RLock()
	filters := make(map[string]CompiledFilter, len(m.filters))
	maps.Copy(filters, m.filters)
	m.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string][]votesmart.Record, len(filters))
	)

	g, ctx := errgroup.WithContext(ctx)
	for name, filter := range filters {
		g.Go(func() error {
			matches, err := Apply(ctx, filter, records)
			if err != nil {
				return fmt.Errorf("filter '%s': %w", name, err)
			}
			mu.Lock()
			results[name] = matches
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
