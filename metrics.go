package geograph

import (
	"sync/atomic"
	"time"
)

// DiscoverStats summarizes one adjacency discovery pass.
type DiscoverStats struct {
	// Pairs is the number of unordered group pairs evaluated
	// (self-pairs included).
	Pairs int
	// PrefilterHits is the number of pairs whose bounding boxes overlapped.
	PrefilterHits int
	// ExactTests is the number of exact geometry intersection tests run.
	ExactTests int
	// Edges is the number of edges recorded.
	Edges int
}

// MetricsCollector defines an interface for collecting pipeline metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordGroups is called after the group indexing stage.
	RecordGroups(features, groups int, duration time.Duration, err error)

	// RecordDiscover is called after the adjacency discovery stage.
	RecordDiscover(stats DiscoverStats, duration time.Duration, err error)

	// RecordJoin is called after the attribute join stage.
	RecordJoin(vertices int, duration time.Duration, err error)

	// RecordExport is called after the snapshot export stage.
	RecordExport(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGroups(int, int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordDiscover(DiscoverStats, time.Duration, error) {}
func (NoopMetricsCollector) RecordJoin(int, time.Duration, error)               {}
func (NoopMetricsCollector) RecordExport(time.Duration, error)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	Features           atomic.Int64
	Groups             atomic.Int64
	PairsEvaluated     atomic.Int64
	PrefilterHits      atomic.Int64
	ExactTests         atomic.Int64
	EdgesFound         atomic.Int64
	JoinedVertices     atomic.Int64
	Errors             atomic.Int64
	DiscoverTotalNanos atomic.Int64
}

// RecordGroups implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGroups(features, groups int, _ time.Duration, err error) {
	b.Features.Add(int64(features))
	b.Groups.Add(int64(groups))
	if err != nil {
		b.Errors.Add(1)
	}
}

// RecordDiscover implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDiscover(stats DiscoverStats, duration time.Duration, err error) {
	b.PairsEvaluated.Add(int64(stats.Pairs))
	b.PrefilterHits.Add(int64(stats.PrefilterHits))
	b.ExactTests.Add(int64(stats.ExactTests))
	b.EdgesFound.Add(int64(stats.Edges))
	b.DiscoverTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
	}
}

// RecordJoin implements MetricsCollector.
func (b *BasicMetricsCollector) RecordJoin(vertices int, _ time.Duration, err error) {
	b.JoinedVertices.Add(int64(vertices))
	if err != nil {
		b.Errors.Add(1)
	}
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(_ time.Duration, err error) {
	if err != nil {
		b.Errors.Add(1)
	}
}
