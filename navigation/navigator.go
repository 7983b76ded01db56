package navigation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mapnav/bfs"
	"github.com/katalvlaran/mapnav/core"
	"github.com/katalvlaran/mapnav/dijkstra"
	"github.com/katalvlaran/mapnav/gateway"
	"github.com/katalvlaran/mapnav/metagraph"
	"github.com/katalvlaran/mapnav/metrics"
)

// validate is a singleton validator instance
var validate = validator.New()

// prefetchLimit bounds concurrent GetMap calls when prefetching.
const prefetchLimit = 4

// Navigator assembles multi-map routes from a MapSource. It holds no
// per-request state; one Navigator may serve concurrent requests.
type Navigator struct {
	src        MapSource
	logger     *slog.Logger
	metrics    *metrics.Registry
	prefetch   bool
	routerOpts []dijkstra.Option
	chainOpts  []bfs.Option
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMetrics records every request on r.
func WithMetrics(r *metrics.Registry) Option {
	return func(n *Navigator) { n.metrics = r }
}

// WithPrefetch fetches all maps of the chain concurrently instead of one at
// a time. The first failure in chain order still decides the outcome.
func WithPrefetch(on bool) Option {
	return func(n *Navigator) { n.prefetch = on }
}

// WithRouterOptions forwards options to every local-route search.
func WithRouterOptions(opts ...dijkstra.Option) Option {
	return func(n *Navigator) { n.routerOpts = append(n.routerOpts, opts...) }
}

// WithChainOptions forwards options to the map-chain search, after the
// request context and the visit logger.
func WithChainOptions(opts ...bfs.Option) Option {
	return func(n *Navigator) { n.chainOpts = append(n.chainOpts, opts...) }
}

// New returns a Navigator reading maps from src.
func New(src MapSource, opts ...Option) *Navigator {
	n := &Navigator{
		src:    src,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Generate resolves req into a route. It never returns an error and never
// panics on behalf of its collaborators: every failure is reported through
// Result.Success, Result.Kind and Result.Error, with no segments attached.
func (n *Navigator) Generate(ctx context.Context, req Request) (res Result) {
	start := time.Now()
	res = Result{RequestID: uuid.NewString(), Request: req}
	log := n.logger.With("request_id", res.RequestID)

	defer func() {
		if r := recover(); r != nil {
			res.fail(fmt.Errorf("navigation: recovered panic: %v", r))
		}
		res.Elapsed = time.Since(start)
		n.metrics.RecordNavigation(string(res.Kind), res.Elapsed, res.TotalMaps, res.TotalNodes)
		if res.Success {
			log.Info("route generated",
				"start_map", req.StartMapID, "end_map", req.EndMapID,
				"maps", res.TotalMaps, "nodes", res.TotalNodes, "distance", res.TotalDistance,
				"elapsed", res.Elapsed)
			return
		}
		log.Warn("route failed",
			"start_map", req.StartMapID, "start_node", req.StartNodeID,
			"end_map", req.EndMapID, "end_node", req.EndNodeID,
			"kind", res.Kind, "error", res.Error)
	}()

	segments, err := n.Assemble(ctx, req)
	if err != nil {
		res.fail(err)
		return res
	}

	res.Success = true
	res.Segments = segments
	res.TotalMaps = len(segments)
	for _, s := range segments {
		res.TotalNodes += len(s.Path)
		res.TotalDistance += s.Distance
	}
	return res
}

func (r *Result) fail(err error) {
	r.Success = false
	r.Kind = Classify(err)
	r.Error = err.Error()
	r.Segments = nil
	r.TotalMaps, r.TotalNodes, r.TotalDistance = 0, 0, 0
}

// Assemble runs the whole pipeline and returns the ordered segments, or the
// first error met. Errors are the packages' own sentinels, wrapped with ids;
// pass them to Classify to obtain an ErrorKind.
func (n *Navigator) Assemble(ctx context.Context, req Request) ([]Segment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: all of start_map_id, start_node_id, end_map_id, end_node_id are required", ErrInvalidInput)
	}

	all, err := n.src.AllMaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("navigation: load maps: %w", err)
	}
	mg := metagraph.Build(all)

	visited := 0
	chainOpts := append([]bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(mapID string, hops int) {
			visited++
			n.logger.Debug("chain search visit", "map", mapID, "hops", hops)
		}),
	}, n.chainOpts...)
	chain, err := bfs.MapChain(mg, req.StartMapID, req.EndMapID, chainOpts...)
	if err != nil {
		return nil, err
	}
	n.logger.Debug("map chain resolved", "chain", chain, "maps_visited", visited)

	maps, err := n.fetch(ctx, chain)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(maps))
	entry := req.StartNodeID
	for i, m := range maps {
		if i == len(maps)-1 {
			path, err := dijkstra.ShortestPath(m, entry, req.EndNodeID, n.routerOpts...)
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{
				MapID:    m.ID(),
				Path:     path,
				Distance: core.PathDistance(m, path),
			})
			break
		}

		next := chain[i+1]
		choice, err := gateway.Select(m, entry, next, n.routerOpts...)
		if err != nil {
			if errors.Is(err, gateway.ErrNoUsableGateway) {
				return nil, fmt.Errorf("%w: from map %q to map %q (%v)", ErrGatewayNotFound, m.ID(), next, err)
			}
			return nil, err
		}
		n.logger.Debug("gateway selected",
			"map", m.ID(), "entry", entry, "gateway", choice.NodeID,
			"target_map", choice.Target.MapID, "target_node", choice.Target.NodeID,
			"distance", choice.Distance)

		target := choice.Target
		segments = append(segments, Segment{
			MapID:      m.ID(),
			Path:       choice.Path,
			Distance:   choice.Distance,
			Transition: &target,
		})
		entry = target.NodeID
	}
	return segments, nil
}

// fetch loads every map of the chain through GetMap, in chain order.
func (n *Navigator) fetch(ctx context.Context, chain []string) ([]*core.Map, error) {
	maps := make([]*core.Map, len(chain))
	if !n.prefetch {
		for i, id := range chain {
			m, err := n.src.GetMap(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("navigation: get map %q: %w", id, err)
			}
			maps[i] = m
		}
		return maps, nil
	}

	errs := make([]error, len(chain))
	var g errgroup.Group
	g.SetLimit(prefetchLimit)
	for i, id := range chain {
		i, id := i, id
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("navigation: recovered panic: %v", r)
				}
			}()
			maps[i], errs[i] = n.src.GetMap(ctx, id)
			return nil
		})
	}
	_ = g.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("navigation: get map %q: %w", chain[i], err)
		}
	}
	return maps, nil
}
