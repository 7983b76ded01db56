package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/mapnav/core"
	"github.com/katalvlaran/mapnav/metrics"
)

// Summary describes one stored map without its graph.
type Summary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Revision string `json:"revision"`
	Nodes    int    `json:"nodes"`
	Gateways int    `json:"gateways"`
}

type entry struct {
	m        *core.Map
	revision string
}

// MemoryStore is a concurrency-safe in-memory map collection.
type MemoryStore struct {
	mu       sync.RWMutex
	maps     map[string]entry
	snapshot []*core.Map // nil when invalidated

	metrics *metrics.Registry
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithMetrics records lookups and snapshot rebuilds on r.
func WithMetrics(r *metrics.Registry) Option {
	return func(s *MemoryStore) { s.metrics = r }
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{maps: make(map[string]entry)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetMap returns the map with the given id, or core.ErrMapNotFound.
func (s *MemoryStore) GetMap(ctx context.Context, id string) (*core.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	e, ok := s.maps[id]
	s.mu.RUnlock()

	s.metrics.RecordStoreLookup(ok)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrMapNotFound, id)
	}
	return e.m, nil
}

// AllMaps returns every stored map sorted by id. The returned slice is the
// caller's to keep; the maps themselves are shared and immutable.
func (s *MemoryStore) AllMaps(ctx context.Context) ([]*core.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap == nil {
		s.mu.Lock()
		if s.snapshot == nil {
			s.snapshot = s.buildSnapshot()
			s.metrics.RecordSnapshotBuild()
		}
		snap = s.snapshot
		s.mu.Unlock()
	}

	out := make([]*core.Map, len(snap))
	copy(out, snap)
	return out, nil
}

// buildSnapshot must be called with mu held for writing.
func (s *MemoryStore) buildSnapshot() []*core.Map {
	out := make([]*core.Map, 0, len(s.maps))
	for _, e := range s.maps {
		out = append(out, e.m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Put stores m, replacing any map with the same id, and returns the new
// revision id.
func (s *MemoryStore) Put(m *core.Map) (string, error) {
	if m == nil {
		return "", core.ErrNilMap
	}
	rev := uuid.NewString()

	s.mu.Lock()
	s.maps[m.ID()] = entry{m: m, revision: rev}
	s.snapshot = nil
	n := len(s.maps)
	s.mu.Unlock()

	s.metrics.SetStoredMaps(n)
	return rev, nil
}

// PutDocument validates doc, builds it and stores the result.
func (s *MemoryStore) PutDocument(doc core.MapDocument) (string, error) {
	m, err := Build(doc)
	if err != nil {
		return "", err
	}
	return s.Put(m)
}

// Delete removes the map with the given id and reports whether it existed.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	_, ok := s.maps[id]
	if ok {
		delete(s.maps, id)
		s.snapshot = nil
	}
	n := len(s.maps)
	s.mu.Unlock()

	s.metrics.SetStoredMaps(n)
	return ok
}

// Revision returns the revision id assigned by the last Put of id.
func (s *MemoryStore) Revision(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.maps[id]
	return e.revision, ok
}

// List summarises every stored map, sorted by id.
func (s *MemoryStore) List() []Summary {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.maps))
	for _, e := range s.maps {
		out = append(out, Summary{
			ID:       e.m.ID(),
			Name:     e.m.Name(),
			Revision: e.revision,
			Nodes:    e.m.NodeCount(),
			Gateways: len(e.m.Gateways()),
		})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored maps.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.maps)
}
