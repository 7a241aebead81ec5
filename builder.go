package geograph

import (
	"context"
	"time"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/graph"
	"github.com/hupe1980/geograph/group"
	"github.com/hupe1980/geograph/persistence"
)

// Config carries the run parameters: the feature source, the grouping field
// naming the vertices, and the snapshot output path. Behavioral knobs are
// Options.
type Config struct {
	// Source provides the features and their attribute schema.
	Source feature.Source

	// Field is the attribute whose distinct values become the vertices.
	Field string

	// Output is the snapshot path. Only used by Run; Build ignores it.
	Output string
}

// Run executes the full pipeline and persists the resulting graph to
// cfg.Output. This is the single batch entry point: any failure aborts the
// run and is returned with stage context.
func Run(ctx context.Context, cfg Config, optFns ...Option) error {
	b := New(cfg.Source, cfg.Field, optFns...)

	g, err := b.Build(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	err = persistence.SaveFile(cfg.Output, g, b.opts.codec, b.opts.compression)
	b.opts.metricsCollector.RecordExport(time.Since(start), err)
	b.opts.logger.LogSnapshot(ctx, cfg.Output, err)

	return err
}

// Builder assembles an adjacency graph from a feature source. Create one per
// run via New; it is not safe for concurrent use.
type Builder struct {
	src   feature.Source
	field string
	opts  options
}

// New creates a Builder for the given source and grouping field.
func New(src feature.Source, field string, optFns ...Option) *Builder {
	return &Builder{
		src:   src,
		field: field,
		opts:  applyOptions(optFns),
	}
}

// Build runs the in-memory pipeline and returns the assembled graph:
// group indexing, adjacency discovery, attribute join, assembly.
func (b *Builder) Build(ctx context.Context) (*graph.Graph, error) {
	if b.src == nil {
		return nil, ErrNilSource
	}
	if b.field == "" {
		return nil, ErrInvalidField
	}

	logger := b.opts.logger.WithField(b.field)

	// One pass to pin the id -> feature view used by the exact tests.
	features := make(map[feature.ID]*feature.Feature)
	for f := range b.src.Features() {
		features[f.ID] = f
	}

	start := time.Now()
	groups, err := group.Build(b.src, b.field)
	b.opts.metricsCollector.RecordGroups(len(features), len(groups), time.Since(start), err)
	logger.LogGroups(ctx, len(features), len(groups), err)
	if err != nil {
		return nil, translateError(err)
	}

	keys := group.SortedKeys(groups)
	gb := graph.NewBuilder(keys)

	start = time.Now()
	stats, err := discover(ctx, groups, features, gb, b.opts.numWorkers)
	elapsed := time.Since(start)
	b.opts.metricsCollector.RecordDiscover(stats, elapsed, err)
	logger.LogDiscover(ctx, stats.Pairs, stats.Edges, elapsed, err)
	if err != nil {
		return nil, translateError(err)
	}

	start = time.Now()
	err = joinAttributes(b.src, b.field, keys, gb)
	b.opts.metricsCollector.RecordJoin(len(keys), time.Since(start), err)
	logger.LogJoin(ctx, len(keys), len(b.src.Fields()), err)
	if err != nil {
		return nil, translateError(err)
	}

	return gb.Finalize(), nil
}
